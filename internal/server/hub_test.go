package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpgraderOriginCheck(t *testing.T) {
	req := func(origin string) *http.Request {
		r, _ := http.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	restricted := newUpgrader([]string{"https://play.example.com"})
	assert.True(t, restricted.CheckOrigin(req("https://play.example.com")))
	assert.False(t, restricted.CheckOrigin(req("https://evil.example.com")))
	assert.False(t, restricted.CheckOrigin(req("")))

	open := newUpgrader([]string{"*"})
	assert.True(t, open.CheckOrigin(req("https://anywhere.example.com")))
	assert.True(t, open.CheckOrigin(req("")))
}
