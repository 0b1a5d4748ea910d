package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
)

func TestEscucharCancion_OtorgaEstrellaUnaSolaVez(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.cancion.Escuchar(ctx, 1)
	if err != nil {
		t.Fatalf("Escuchar failed: %v", err)
	}
	if first.YaEscuchada {
		t.Fatalf("expected ya_escuchada=false on first listen")
	}
	if first.EstrellasOtorgadas != EstrellasPorCancion {
		t.Fatalf("unexpected estrellas otorgadas: got=%d want=%d", first.EstrellasOtorgadas, EstrellasPorCancion)
	}
	if first.NuevasEstrellas != 1 {
		t.Fatalf("unexpected total: got=%d want=1", first.NuevasEstrellas)
	}

	second, err := env.cancion.Escuchar(ctx, 1)
	if err != nil {
		t.Fatalf("second Escuchar failed: %v", err)
	}
	if !second.YaEscuchada {
		t.Fatalf("expected ya_escuchada=true on repeat listen")
	}
	if second.EstrellasOtorgadas != 0 || second.NuevasEstrellas != 1 {
		t.Fatalf("repeat listen changed stars: otorgadas=%d total=%d", second.EstrellasOtorgadas, second.NuevasEstrellas)
	}
}

func TestEscucharCancion_NoExiste(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.cancion.Escuchar(context.Background(), 999)
	if err == nil {
		t.Fatalf("expected error for unknown cancion")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apierr, got %T", err)
	}
	if ae.Status != http.StatusNotFound || ae.Code != "cancion_not_found" {
		t.Fatalf("unexpected error: status=%d code=%q", ae.Status, ae.Code)
	}
}

func TestListCanciones_MarcaEscuchadas(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.cancion.Escuchar(ctx, 2); err != nil {
		t.Fatalf("Escuchar failed: %v", err)
	}

	views, err := env.cancion.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("unexpected count: got=%d want=2", len(views))
	}
	for _, v := range views {
		wantEscuchada := v.ID == 2
		if v.Escuchada != wantEscuchada {
			t.Fatalf("cancion %d escuchada flag: got=%v want=%v", v.ID, v.Escuchada, wantEscuchada)
		}
	}
}
