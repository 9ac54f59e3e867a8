package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-upload-keeper/models"
)

func TestContextKey_String(t *testing.T) {
	if got := TokenCtxKey.String(); got != "token" {
		t.Errorf("expected %q, got %q", "token", got)
	}
}

func TestGetTokenFromContext_Found(t *testing.T) {
	token := models.Token{Subject: "ci", Permissions: []string{models.PermissionDeploy}}
	ctx := WithToken(context.Background(), token)

	got, ok := GetTokenFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if got.Subject != "ci" || !got.HasPermission(models.PermissionDeploy) {
		t.Errorf("unexpected token %+v", got)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	if _, ok := GetTokenFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "not a token")

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Error("expected ok=false for value of unexpected type")
	}
}

func TestGetTokenFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	//nolint:staticcheck // deliberately using a plain string key
	ctx := context.WithValue(context.Background(), "token", models.Token{Subject: "x"})

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Error("expected plain string key not to collide with TokenCtxKey")
	}
}
