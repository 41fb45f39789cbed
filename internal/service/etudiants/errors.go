package etudiants

import "errors"

var (
	// ErrEtudiantNotFound возвращается, когда студент не найден
	ErrEtudiantNotFound = errors.New("etudiants: etudiant not found")

	// ErrCinTaken возвращается, если студент с таким CIN уже существует
	ErrCinTaken = errors.New("etudiants: cin already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("etudiants: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("etudiants: internal error")
)
