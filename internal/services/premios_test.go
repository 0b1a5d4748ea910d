package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
)

func claimErrCode(t *testing.T, err error) (int, string) {
	t.Helper()
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apierr, got %T: %v", err, err)
	}
	return ae.Status, ae.Code
}

func TestReclamarPremio_EstrellasInsuficientesNoTocaElEstado(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 5 stars from carta 1; premio 2 costs 10.
	if _, err := env.cartas.Leer(ctx, 1); err != nil {
		t.Fatalf("Leer failed: %v", err)
	}

	_, err := env.premios.Reclamar(ctx, 2)
	if err == nil {
		t.Fatalf("expected insufficient stars error")
	}
	status, code := claimErrCode(t, err)
	if status != http.StatusConflict || code != "estrellas_insuficientes" {
		t.Fatalf("unexpected error: status=%d code=%q", status, code)
	}

	estado, err := env.repo.Get(ctx, nil)
	if err != nil {
		t.Fatalf("Get estado failed: %v", err)
	}
	if estado.Estrellas != 5 {
		t.Fatalf("failed claim changed stars: got=%d want=5", estado.Estrellas)
	}
	if len(estado.PremiosReclamados) != 0 {
		t.Fatalf("failed claim recorded: %+v", estado.PremiosReclamados)
	}
}

func TestReclamarPremio_FlujoCompleto(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Cartas 1 (+5) and 3 (+10) bring the balance to 15.
	if _, err := env.cartas.Leer(ctx, 1); err != nil {
		t.Fatalf("Leer failed: %v", err)
	}
	if _, err := env.cartas.Leer(ctx, 3); err != nil {
		t.Fatalf("Leer failed: %v", err)
	}

	result, err := env.premios.Reclamar(ctx, 2)
	if err != nil {
		t.Fatalf("Reclamar failed: %v", err)
	}
	if result.EstrellasRestantes != 5 {
		t.Fatalf("unexpected remaining stars: got=%d want=5", result.EstrellasRestantes)
	}
	if result.Premio.ID != 2 {
		t.Fatalf("unexpected premio in result: %+v", result.Premio)
	}

	estado, err := env.repo.Get(ctx, nil)
	if err != nil {
		t.Fatalf("Get estado failed: %v", err)
	}
	if len(estado.PremiosReclamados) != 1 {
		t.Fatalf("claim recorded %d times, want 1", len(estado.PremiosReclamados))
	}
	if estado.PremiosReclamados[0].PremioID != 2 {
		t.Fatalf("wrong premio recorded: %+v", estado.PremiosReclamados[0])
	}
	if estado.PremiosReclamados[0].FechaReclamado.IsZero() {
		t.Fatalf("claim recorded without timestamp")
	}
}

func TestReclamarPremio_SegundaVezFalla(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.cartas.Leer(ctx, 3); err != nil {
		t.Fatalf("Leer failed: %v", err)
	}
	if _, err := env.premios.Reclamar(ctx, 1); err != nil {
		t.Fatalf("first Reclamar failed: %v", err)
	}

	_, err := env.premios.Reclamar(ctx, 1)
	if err == nil {
		t.Fatalf("expected already claimed error")
	}
	status, code := claimErrCode(t, err)
	if status != http.StatusConflict || code != "premio_ya_reclamado" {
		t.Fatalf("unexpected error: status=%d code=%q", status, code)
	}

	estado, err := env.repo.Get(ctx, nil)
	if err != nil {
		t.Fatalf("Get estado failed: %v", err)
	}
	if estado.Estrellas != 7 {
		t.Fatalf("double claim changed stars: got=%d want=7", estado.Estrellas)
	}
	if len(estado.PremiosReclamados) != 1 {
		t.Fatalf("claim recorded %d times, want 1", len(estado.PremiosReclamados))
	}
}

func TestReclamarPremio_NoExiste(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.premios.Reclamar(context.Background(), 999)
	if err == nil {
		t.Fatalf("expected error for unknown premio")
	}
	status, code := claimErrCode(t, err)
	if status != http.StatusNotFound || code != "premio_not_found" {
		t.Fatalf("unexpected error: status=%d code=%q", status, code)
	}
}

func TestListPremios_MarcaReclamados(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.cartas.Leer(ctx, 1); err != nil {
		t.Fatalf("Leer failed: %v", err)
	}
	if _, err := env.premios.Reclamar(ctx, 1); err != nil {
		t.Fatalf("Reclamar failed: %v", err)
	}

	views, err := env.premios.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("unexpected count: got=%d want=3", len(views))
	}
	// Catalog orders premios by cost.
	if views[0].ID != 1 || views[1].ID != 2 || views[2].ID != 3 {
		t.Fatalf("premios not ordered by cost: %+v", views)
	}
	for _, v := range views {
		wantReclamado := v.ID == 1
		if v.Reclamado != wantReclamado {
			t.Fatalf("premio %d reclamado flag: got=%v want=%v", v.ID, v.Reclamado, wantReclamado)
		}
	}
}
