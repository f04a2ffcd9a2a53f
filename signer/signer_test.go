package signer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/samber/mo"
)

const testSecret = "dGhpcy1pcy1hLXRlc3Qtc2VjcmV0LWtleQ=="

func TestCreateHmacSignatureDeterminism(t *testing.T) {
	body := mo.Some(`{"orderID":"0xabc"}`)

	first, err := CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", body)
	td.CmpNoError(t, err)

	for range 5 {
		again, err := CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", body)
		td.CmpNoError(t, err)
		td.Cmp(t, again, first)
	}
}

func TestCreateHmacSignatureInputSensitivity(t *testing.T) {
	base := func() (string, error) {
		return CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.Some("body"))
	}

	baseline, err := base()
	td.CmpNoError(t, err)

	variants := []struct {
		name string
		sig  func() (string, error)
	}{
		{"different secret", func() (string, error) {
			return CreateHmacSignature("b3RoZXItc2VjcmV0", 1700000000, MethodPost, "/order", mo.Some("body"))
		}},
		{"different timestamp", func() (string, error) {
			return CreateHmacSignature(testSecret, 1700000001, MethodPost, "/order", mo.Some("body"))
		}},
		{"different method", func() (string, error) {
			return CreateHmacSignature(testSecret, 1700000000, MethodDelete, "/order", mo.Some("body"))
		}},
		{"different path", func() (string, error) {
			return CreateHmacSignature(testSecret, 1700000000, MethodPost, "/orders", mo.Some("body"))
		}},
		{"different body", func() (string, error) {
			return CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.Some("body2"))
		}},
		{"absent body", func() (string, error) {
			return CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.None[string]())
		}},
	}

	for _, tt := range variants {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := tt.sig()
			td.CmpNoError(t, err)
			td.CmpNot(t, sig, baseline)
		})
	}
}

func TestCreateHmacSignatureURLSafe(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9\-_=]+$`)

	// Enough samples that a raw base64 "+" or "/" would show up
	for ts := int64(1700000000); ts < 1700000100; ts++ {
		sig, err := CreateHmacSignature(testSecret, ts, MethodGet, "/data/orders", mo.None[string]())
		td.CmpNoError(t, err)

		if !urlSafe.MatchString(sig) {
			t.Fatalf("signature %q is not url-safe base64", sig)
		}
		if strings.ContainsAny(sig, "+/") {
			t.Fatalf("signature %q contains raw base64 characters", sig)
		}
	}
}

func TestCreateHmacSignatureEmptyBodyEqualsAbsent(t *testing.T) {
	// An empty body is appended per the append-if-present rule, but appends
	// no bytes, so it signs identically to an absent body. Both sides of the
	// protocol rely on this equivalence.
	withEmpty, err := CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.Some(""))
	td.CmpNoError(t, err)

	absent, err := CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.None[string]())
	td.CmpNoError(t, err)

	td.Cmp(t, withEmpty, absent)
}

func TestCreateHmacSignatureURLSafeSecret(t *testing.T) {
	// Secrets are issued in URL-safe base64; both alphabets must decode to
	// the same key.
	std, err := CreateHmacSignature("ab+/cd+/ef==", 1700000000, MethodGet, "/time", mo.None[string]())
	td.CmpNoError(t, err)

	urlSafe, err := CreateHmacSignature("ab-_cd-_ef==", 1700000000, MethodGet, "/time", mo.None[string]())
	td.CmpNoError(t, err)

	td.Cmp(t, urlSafe, std)
}

func TestCreateHeaderPayload(t *testing.T) {
	s := New(Credentials{
		Key:        "key-1",
		Secret:     testSecret,
		Passphrase: "passphrase-1",
	})

	payload, err := s.CreateHeaderPayload(
		MethodPost,
		"/order",
		mo.Some(`{"a":1}`),
		mo.Some[int64](1700000000),
	)
	td.CmpNoError(t, err)

	expectedSig, err := CreateHmacSignature(testSecret, 1700000000, MethodPost, "/order", mo.Some(`{"a":1}`))
	td.CmpNoError(t, err)

	td.Cmp(t, payload, HeaderPayload{
		Key:        "key-1",
		Passphrase: "passphrase-1",
		Signature:  expectedSig,
		Timestamp:  1700000000,
	})
}

func TestCreateHeaderPayloadDefaultsTimestamp(t *testing.T) {
	s := New(Credentials{Key: "k", Secret: testSecret, Passphrase: "p"})

	payload, err := s.CreateHeaderPayload(MethodGet, "/time", mo.None[string](), mo.None[int64]())
	td.CmpNoError(t, err)
	td.Cmp(t, payload.Timestamp, td.Gt(int64(0)))
}

func TestCreateHmacSignatureInvalidSecret(t *testing.T) {
	_, err := CreateHmacSignature("not base64 at all!!!", 1700000000, MethodGet, "/time", mo.None[string]())
	td.CmpError(t, err)
}
