package middleware

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	CSRFFieldName  = "_token"
	CSRFCookieName = "stroke_csrf"
)

type ginContextKey struct{}

func ginContext(r *http.Request) *gin.Context {
	c, _ := r.Context().Value(ginContextKey{}).(*gin.Context)
	return c
}

// CSRF는 gorilla/csrf 를 gin 미들웨어로 감싼다.
// 토큰 검증 실패 시 onFail 을 호출하고 이후 핸들러는 실행하지 않는다.
// key 가 비어 있으면 프로세스별 랜덤 키 사용
func CSRF(key []byte, secure bool, onFail gin.HandlerFunc) (gin.HandlerFunc, error) {
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ginContext(r)
		c.Request = r
		c.Next()
	})
	failed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := ginContext(r)
		c.Request = r
		onFail(c)
		c.Abort()
	})

	protect := csrf.Protect(key,
		csrf.FieldName(CSRFFieldName),
		csrf.CookieName(CSRFCookieName),
		csrf.Path("/"),
		csrf.Secure(secure),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(failed),
	)(next)

	return func(c *gin.Context) {
		r := c.Request.WithContext(context.WithValue(c.Request.Context(), ginContextKey{}, c))
		// TLS 종료 프록시 뒤가 아니면 Referer 엄격 검사는 생략 (Origin 검사는 유지)
		if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") != "https" {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protect.ServeHTTP(c.Writer, r)
	}, nil
}

// CSRFToken returns the masked token for the current request, or "" when the
// route is not behind CSRF.
func CSRFToken(c *gin.Context) string {
	return csrf.Token(c.Request)
}

func CSRFFailure(c *gin.Context) error {
	return csrf.FailureReason(c.Request)
}
