package allocate_reservation

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.NumeroChambre <= 0 {
		return fmt.Errorf("%w: numeroChambre must be positive", ErrInvalidInput)
	}

	if req.Cin <= 0 {
		return fmt.Errorf("%w: cin must be positive", ErrInvalidInput)
	}

	return nil
}
