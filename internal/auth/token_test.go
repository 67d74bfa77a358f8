package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/model"
)

const testSecret = "test-secret"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newTestManager(t *testing.T, clock *fakeClock, ttl time.Duration) *TokenManager {
	t.Helper()

	m, err := NewTokenManager(testSecret, ttl, WithClock(clock.Now))
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("  ", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenManager(testSecret, 0)
	assert.Error(t, err)

	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, m.TTL())
}

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(t, clock, time.Hour)

	token, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, int64(7), claims.ID)
	assert.True(t, claims.IssuedAt.Equal(clock.now))
	assert.True(t, claims.ExpiresAt.Equal(clock.now.Add(time.Hour)))
}

func TestIssue_RejectsIncompleteIdentity(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeClock{now: time.Unix(1_700_000_000, 0)}, time.Hour)

	_, err := m.Issue(model.Identity{Email: "", ID: 1})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = m.Issue(model.Identity{Email: "a@x.com", ID: 0})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestIssue_DifferentTimestampsDifferentTokens(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(t, clock, time.Hour)

	first, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)
	again, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)
	assert.Equal(t, first, again)

	clock.now = clock.now.Add(time.Second)
	later, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)
	assert.NotEqual(t, first, later)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issuedAt := time.Unix(1_700_000_000, 0)
	ttl := 30 * time.Minute
	clock := &fakeClock{now: issuedAt}
	m := newTestManager(t, clock, ttl)

	token, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)

	admitted := []time.Duration{0, time.Second, ttl / 2, ttl - time.Second, ttl - time.Nanosecond}
	for _, offset := range admitted {
		clock.now = issuedAt.Add(offset)
		_, err := m.Verify(token)
		assert.NoError(t, err, "offset %s should be admitted", offset)
	}

	rejected := []time.Duration{ttl, ttl + time.Nanosecond, ttl + time.Second, 24 * time.Hour}
	for _, offset := range rejected {
		clock.now = issuedAt.Add(offset)
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, model.ErrTokenExpired, "offset %s should be rejected", offset)
	}
}

func TestVerify_ExpiryBoundary_SubSecondIssue(t *testing.T) {
	t.Parallel()

	loginAt := time.Unix(1_700_000_000, 700_000_000)
	ttl := time.Hour
	clock := &fakeClock{now: loginAt}
	m := newTestManager(t, clock, ttl)

	token, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)

	issuedAt := loginAt.Truncate(time.Second)
	assert.True(t, claims.IssuedAt.Equal(issuedAt), "iat %s", claims.IssuedAt)
	assert.True(t, claims.ExpiresAt.Equal(issuedAt.Add(ttl)), "exp %s", claims.ExpiresAt)

	admitted := []time.Duration{0, 300 * time.Millisecond, ttl - time.Second, ttl - 300*time.Millisecond, ttl - time.Nanosecond}
	for _, offset := range admitted {
		clock.now = issuedAt.Add(offset)
		_, err := m.Verify(token)
		assert.NoError(t, err, "offset %s should be admitted", offset)
	}

	rejected := []time.Duration{ttl, ttl + 300*time.Millisecond, ttl + 700*time.Millisecond}
	for _, offset := range rejected {
		clock.now = issuedAt.Add(offset)
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, model.ErrTokenExpired, "offset %s should be rejected", offset)
	}
}

func TestVerify_SignatureBitFlips(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeClock{now: time.Unix(1_700_000_000, 0)}, time.Hour)
	token, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for i := range signature {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), signature...)
			mutated[i] ^= 1 << bit

			tampered := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(mutated)
			_, err := m.Verify(tampered)
			require.ErrorIs(t, err, model.ErrInvalidToken, "byte %d bit %d", i, bit)
		}
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeClock{now: time.Unix(1_700_000_000, 0)}, time.Hour)
	token, err := m.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	forged := strings.Replace(string(payload), `"id":7`, `"id":8`, 1)
	require.NotEqual(t, string(payload), forged)

	tampered := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(forged)) + "." + parts[2]
	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	issuer, err := NewTokenManager("right-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	verifier, err := NewTokenManager("wrong-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	token, err := issuer.Issue(model.Identity{Email: "a@x.com", ID: 7})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestVerify_MalformedStrings(t *testing.T) {
	t.Parallel()

	m := newTestManager(t, &fakeClock{now: time.Unix(1_700_000_000, 0)}, time.Hour)

	for _, raw := range []string{"", "not.a.jwt", "abc", "a.b", "...."} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, model.ErrInvalidToken, "input %q", raw)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(t, clock, time.Hour)

	claims := tokenClaims{
		Email: "a@x.com",
		ID:    7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(unsigned)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = m.Verify(hs512)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestVerify_RequiresExpiryAndIdentity(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(t, clock, time.Hour)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{Email: "a@x.com", ID: 7}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = m.Verify(noExpiry)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		ID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = m.Verify(noEmail)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
