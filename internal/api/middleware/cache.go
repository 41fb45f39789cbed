package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

const headerCache = "X-Cache"

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

// Cache кэширует успешные GET ответы по RequestURI на время ttl
func Cache(store *cache.Cache, ttl time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			if item, found := store.Get(key); found {
				cached := item.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.Header().Set(headerCache, "HIT")
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			w.Header().Set(headerCache, "MISS")
			bw := &bodyCacheWriter{statusWriter: newStatusWriter(w), body: bytes.NewBuffer(nil)}
			next.ServeHTTP(bw, r)

			if bw.status >= 200 && bw.status < 300 {
				headers := bw.Header().Clone()
				headers.Del(headerCache)
				store.Set(key, cachedResponse{
					status:  bw.status,
					headers: headers,
					body:    bw.body.Bytes(),
				}, ttl)
			}
		})
	}
}

// InvalidateCache сбрасывает кэш после каждого успешного изменяющего запроса
// Структура общежитий связана каскадно, поэтому кэш очищается целиком
func InvalidateCache(store *cache.Cache) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			if sw.status < http.StatusBadRequest {
				store.Flush()
			}
		})
	}
}
