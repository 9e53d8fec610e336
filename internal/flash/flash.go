/* 리다이렉트 한 번을 넘어 전달되는 1회성 상태(flash)의 서명 및 검증 */

package flash

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidFlash = errors.New("invalid flash state")

// 성공 결과 (화면 표시용 키 이름 유지)
type Success struct {
	RiskLevel       string  `json:"risk_level"`
	RiskProbability float64 `json:"risk_probability"`
	ResultText      string  `json:"result_text"`
}

// State is everything one POST /predict hands to the next rendered page.
// At most one of Success, Error and Errors is set.
type State struct {
	Success *Success            `json:"success,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Old     map[string]string   `json:"old,omitempty"`
}

func (s State) Empty() bool {
	return s.Success == nil && s.Error == "" && len(s.Errors) == 0 && len(s.Old) == 0
}

// Claims 구조체 정의, JWT 페이로드에 flash 상태 포함
type Claims struct {
	State State `json:"flash"`
	jwt.RegisteredClaims
}

// Codec signs flash state into a short-lived HS256 token and reads it back.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec returns a codec for the given secret. An empty secret yields a
// random per-process key, so tokens do not survive a restart.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate flash key: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

func (c *Codec) Encode(state State) (string, error) {
	now := c.now()
	claims := &Claims{
		State: state,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "stroke-risk",
			Subject:   "flash",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.key)
}

func (c *Codec) Decode(tokenString string) (State, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrInvalidFlash, err)
	}
	if !token.Valid {
		return State{}, ErrInvalidFlash
	}
	return claims.State, nil
}
