package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
)

func TestListFrases_FiltraPorCategoria(t *testing.T) {
	env := newTestEnv(t)

	all := env.frases.List("")
	if len(all) != 3 {
		t.Fatalf("unexpected total: got=%d want=3", len(all))
	}

	romanticas := env.frases.List("romantica")
	if len(romanticas) != 2 {
		t.Fatalf("unexpected romanticas: got=%d want=2", len(romanticas))
	}

	if got := env.frases.List("inexistente"); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFraseAleatoria_RespetaCategoria(t *testing.T) {
	env := newTestEnv(t)

	for i := 0; i < 20; i++ {
		frase, err := env.frases.Aleatoria("romantica")
		if err != nil {
			t.Fatalf("Aleatoria failed: %v", err)
		}
		if frase.Categoria != "romantica" {
			t.Fatalf("picked frase outside categoria: %+v", frase)
		}
	}
}

func TestFraseAleatoria_CategoriaVacia(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.frases.Aleatoria("inexistente")
	if err == nil {
		t.Fatalf("expected error for empty categoria pool")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apierr, got %T", err)
	}
	if ae.Status != http.StatusNotFound || ae.Code != "frase_not_found" {
		t.Fatalf("unexpected error: status=%d code=%q", ae.Status, ae.Code)
	}
}

func TestGetFrase(t *testing.T) {
	env := newTestEnv(t)

	frase, err := env.frases.Get(3)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if frase.Categoria != "chiste_malo" {
		t.Fatalf("unexpected frase: %+v", frase)
	}

	if _, err := env.frases.Get(999); err == nil {
		t.Fatalf("expected error for unknown frase")
	}
}
