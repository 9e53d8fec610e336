package flash

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const CookieName = "stroke_flash"

// 브라우저 쿠키 한 개 한도(4096 바이트)에서 이름과 속성 몫을 뺀 토큰 최대 길이
const MaxTokenBytes = 3800

// 축약 단계에서 메시지 한 개의 최대 길이 (rune 기준)
const maxMessageRunes = 300

const OversizeMessage = "The result could not be displayed. Please try again."

// Put attaches state to the response that is about to redirect. State that
// would not fit in one cookie is shrunk step by step: first the echoed input
// is dropped, then long texts are cut, and as a last resort only
// OversizeMessage is kept.
func (c *Codec) Put(ctx *gin.Context, state State) error {
	token, err := c.fit(state)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, token, int(c.ttl.Seconds()), "/", "", ctx.Request.TLS != nil, true)
	return nil
}

func (c *Codec) fit(state State) (string, error) {
	steps := []func(State) State{
		func(s State) State { return s },
		func(s State) State { s.Old = nil; return s },
		func(s State) State { return truncated(s) },
	}
	for _, step := range steps {
		token, err := c.Encode(step(state))
		if err != nil {
			return "", err
		}
		if len(token) <= MaxTokenBytes {
			return token, nil
		}
	}
	return c.Encode(State{Error: OversizeMessage})
}

// Old 없이 모든 문자열을 maxMessageRunes 로 자른 사본
func truncated(s State) State {
	out := State{Error: cut(s.Error)}
	if s.Success != nil {
		success := *s.Success
		success.RiskLevel = cut(success.RiskLevel)
		success.ResultText = cut(success.ResultText)
		out.Success = &success
	}
	if len(s.Errors) > 0 {
		out.Errors = make(map[string][]string, len(s.Errors))
		for field, msgs := range s.Errors {
			for _, m := range msgs {
				out.Errors[field] = append(out.Errors[field], cut(m))
			}
		}
	}
	return out
}

func cut(s string) string {
	if r := []rune(s); len(r) > maxMessageRunes {
		return string(r[:maxMessageRunes])
	}
	return s
}

// Take reads the pending state and clears the cookie in the same response,
// so a state is shown at most once. No cookie means an empty state.
func (c *Codec) Take(ctx *gin.Context) (State, error) {
	token, err := ctx.Cookie(CookieName)
	if err != nil || token == "" {
		return State{}, nil
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, "", -1, "/", "", ctx.Request.TLS != nil, true)
	return c.Decode(token)
}
