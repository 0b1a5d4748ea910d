package services

import (
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/juanpcm/reconquista-backend/internal/apierr"
	"github.com/juanpcm/reconquista-backend/internal/catalog"
	"github.com/juanpcm/reconquista-backend/internal/logger"
)

// FraseService serves the static phrase catalog. It never touches the
// store, so its methods take no context.
type FraseService interface {
	// List returns all phrases, optionally filtered by category.
	List(categoria string) []catalog.Frase
	// Aleatoria picks a random phrase, optionally within a category.
	Aleatoria(categoria string) (*catalog.Frase, error)
	Get(fraseID int64) (*catalog.Frase, error)
}

type fraseService struct {
	log     *logger.Logger
	catalog *catalog.Catalog
}

func NewFraseService(log *logger.Logger, cat *catalog.Catalog) FraseService {
	serviceLog := log.With("service", "FraseService")
	return &fraseService{log: serviceLog, catalog: cat}
}

func (fs *fraseService) List(categoria string) []catalog.Frase {
	frases := fs.catalog.FrasesPorCategoria(categoria)
	if frases == nil {
		frases = []catalog.Frase{}
	}
	return frases
}

func (fs *fraseService) Aleatoria(categoria string) (*catalog.Frase, error) {
	frases := fs.catalog.FrasesPorCategoria(categoria)
	if len(frases) == 0 {
		if categoria != "" {
			return nil, apierr.New(http.StatusNotFound, "frase_not_found", fmt.Errorf("no hay frases disponibles en la categoría '%s'", categoria))
		}
		return nil, apierr.New(http.StatusNotFound, "frase_not_found", fmt.Errorf("no hay frases disponibles"))
	}
	frase := frases[rand.IntN(len(frases))]
	return &frase, nil
}

func (fs *fraseService) Get(fraseID int64) (*catalog.Frase, error) {
	frase, ok := fs.catalog.FraseByID(fraseID)
	if !ok {
		return nil, apierr.New(http.StatusNotFound, "frase_not_found", fmt.Errorf("frase con ID %d no encontrada", fraseID))
	}
	return &frase, nil
}
