package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStoreCreateAndValue(t *testing.T) {
	store := NewStore()
	sess := store.Create()
	if sess.ID == "" {
		t.Fatal("empty session ID")
	}

	if _, ok := store.Value(sess.ID, TickerKey); ok {
		t.Error("new session should have no ticker")
	}

	store.Set(sess.ID, TickerKey, "AAPL")
	v, ok := store.Value(sess.ID, TickerKey)
	if !ok || v != "AAPL" {
		t.Errorf("Value = %q, %v", v, ok)
	}

	// Overwrite: last write wins.
	store.Set(sess.ID, TickerKey, "MSFT")
	if v, _ := store.Value(sess.ID, TickerKey); v != "MSFT" {
		t.Errorf("after overwrite Value = %q", v)
	}
}

func TestStoreUnknownSession(t *testing.T) {
	store := NewStore()
	if store.Get("nope") != nil {
		t.Error("Get of unknown ID should be nil")
	}
	if _, ok := store.Value("nope", TickerKey); ok {
		t.Error("Value of unknown ID should not be ok")
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	sess := store.Create()
	store.Delete(sess.ID)
	if store.Get(sess.ID) != nil {
		t.Error("deleted session still present")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d", store.Len())
	}
}

func TestCodecRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")
	value := codec.Encode("session-123")

	id, err := codec.Decode(value)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if id != "session-123" {
		t.Errorf("id = %q", id)
	}
}

func TestCodecRejectsTampering(t *testing.T) {
	codec := NewCodec("test-secret")
	value := codec.Encode("session-123")

	if _, err := codec.Decode("session-456." + value[len("session-123."):]); err == nil {
		t.Error("tampered ID accepted")
	}
	if _, err := codec.Decode("no-signature"); err == nil {
		t.Error("unsigned value accepted")
	}

	other := NewCodec("other-secret")
	if _, err := other.Decode(value); err == nil {
		t.Error("value signed with different secret accepted")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	rec := httptest.NewRecorder()
	codec.SetCookie(rec, "session-123")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}

	id, ok := codec.ReadCookie(req)
	if !ok || id != "session-123" {
		t.Errorf("ReadCookie = %q, %v", id, ok)
	}
}

func TestReadCookieMissing(t *testing.T) {
	codec := NewCodec("test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := codec.ReadCookie(req); ok {
		t.Error("missing cookie reported ok")
	}
}
