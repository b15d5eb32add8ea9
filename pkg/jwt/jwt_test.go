package jwt

import (
	"testing"
	"time"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-16-chars",
		TokenTTL:  ttl,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken 应成功: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken 应成功: %v", err)
	}
	if claims.UserID != "user-1" || claims.Login != "alice" || claims.Name != "Alice" {
		t.Errorf("声明内容不符: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("期望分配 JTI")
	}
	if claims.Issuer != "koala-restaurant" {
		t.Errorf("签发者不符: %s", claims.Issuer)
	}
}

// 每次签发的 JTI 必须唯一，否则黑名单会误伤
func TestGenerateTokenUniqueJTI(t *testing.T) {
	m := newTestManager(time.Hour)

	t1, _ := m.GenerateToken("user-1", "alice", "Alice")
	t2, _ := m.GenerateToken("user-1", "alice", "Alice")

	c1, err := m.ParseToken(t1)
	if err != nil {
		t.Fatalf("ParseToken 应成功: %v", err)
	}
	c2, err := m.ParseToken(t2)
	if err != nil {
		t.Fatalf("ParseToken 应成功: %v", err)
	}
	if c1.ID == c2.ID {
		t.Error("两次签发的 JTI 不应相同")
	}
}

func TestParseExpiredToken(t *testing.T) {
	m := newTestManager(-time.Hour)

	token, err := m.GenerateToken("user-1", "alice", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken 应成功: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-16-chars-min",
		TokenTTL:  time.Hour,
	})

	token, err := m.GenerateToken("user-1", "alice", "Alice")
	if err != nil {
		t.Fatalf("GenerateToken 应成功: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestParseGarbageToken(t *testing.T) {
	m := newTestManager(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.ParseToken(token); err != ErrTokenInvalid {
			t.Errorf("解析 %q 期望 ErrTokenInvalid，实际: %v", token, err)
		}
	}
}
