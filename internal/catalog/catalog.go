package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Static reference data bundled with the app. Parsed once at startup and
// never mutated afterwards, so the handle is shared without synchronization.

type Carta struct {
	ID                  int64  `json:"id"`
	Titulo              string `json:"titulo"`
	Contenido           string `json:"contenido"`
	EstrellasRecompensa int    `json:"estrellas_recompensa"`
}

type Razon struct {
	ID               int64  `json:"id"`
	PuntosRequeridos int    `json:"puntos_requeridos"`
	Categoria        string `json:"categoria"`
	Texto            string `json:"texto"`
	Emoji            string `json:"emoji"`
}

type Premio struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Costo      int    `json:"costo"`
	Emoji      string `json:"emoji"`
	Disponible bool   `json:"disponible"`
}

type Cancion struct {
	ID      int64  `json:"id"`
	Nombre  string `json:"nombre"`
	Artista string `json:"artista"`
	Link    string `json:"link"`
	Motivo  string `json:"motivo"`
}

type Frase struct {
	ID        int64  `json:"id"`
	Texto     string `json:"texto"`
	Categoria string `json:"categoria"`
	Emoji     string `json:"emoji"`
}

type Catalog struct {
	cartas    []Carta
	razones   []Razon
	premios   []Premio
	canciones []Cancion
	frases    []Frase

	cartasByID    map[int64]Carta
	razonesByID   map[int64]Razon
	premiosByID   map[int64]Premio
	cancionesByID map[int64]Cancion
	frasesByID    map[int64]Frase
}

// New builds a catalog from already-parsed records. Razones are kept
// sorted by unlock threshold and premios by cost; cartas, canciones and
// frases keep fixture order.
func New(cartas []Carta, razones []Razon, premios []Premio, canciones []Cancion, frases []Frase) (*Catalog, error) {
	c := &Catalog{
		cartas:        cartas,
		razones:       append([]Razon(nil), razones...),
		premios:       append([]Premio(nil), premios...),
		canciones:     canciones,
		frases:        frases,
		cartasByID:    make(map[int64]Carta, len(cartas)),
		razonesByID:   make(map[int64]Razon, len(razones)),
		premiosByID:   make(map[int64]Premio, len(premios)),
		cancionesByID: make(map[int64]Cancion, len(canciones)),
		frasesByID:    make(map[int64]Frase, len(frases)),
	}
	sort.SliceStable(c.razones, func(i, j int) bool {
		return c.razones[i].PuntosRequeridos < c.razones[j].PuntosRequeridos
	})
	sort.SliceStable(c.premios, func(i, j int) bool {
		return c.premios[i].Costo < c.premios[j].Costo
	})
	for _, carta := range cartas {
		if _, dup := c.cartasByID[carta.ID]; dup {
			return nil, fmt.Errorf("cartas: duplicate id %d", carta.ID)
		}
		c.cartasByID[carta.ID] = carta
	}
	for _, razon := range razones {
		if _, dup := c.razonesByID[razon.ID]; dup {
			return nil, fmt.Errorf("razones: duplicate id %d", razon.ID)
		}
		c.razonesByID[razon.ID] = razon
	}
	for _, premio := range premios {
		if _, dup := c.premiosByID[premio.ID]; dup {
			return nil, fmt.Errorf("premios: duplicate id %d", premio.ID)
		}
		c.premiosByID[premio.ID] = premio
	}
	for _, cancion := range canciones {
		if _, dup := c.cancionesByID[cancion.ID]; dup {
			return nil, fmt.Errorf("canciones: duplicate id %d", cancion.ID)
		}
		c.cancionesByID[cancion.ID] = cancion
	}
	for _, frase := range frases {
		if _, dup := c.frasesByID[frase.ID]; dup {
			return nil, fmt.Errorf("frases: duplicate id %d", frase.ID)
		}
		c.frasesByID[frase.ID] = frase
	}
	return c, nil
}

// Load parses the five fixture files under dir. A missing or malformed
// fixture is an error; callers treat it as fatal at startup.
func Load(dir string) (*Catalog, error) {
	cartas, err := loadCartas(filepath.Join(dir, "cartas.json"))
	if err != nil {
		return nil, err
	}
	var razones []Razon
	if err := loadJSON(filepath.Join(dir, "razones.json"), &razones); err != nil {
		return nil, err
	}
	premios, err := loadPremios(filepath.Join(dir, "premios.json"))
	if err != nil {
		return nil, err
	}
	var canciones []Cancion
	if err := loadJSON(filepath.Join(dir, "canciones.json"), &canciones); err != nil {
		return nil, err
	}
	var frases []Frase
	if err := loadJSON(filepath.Join(dir, "frases.json"), &frases); err != nil {
		return nil, err
	}
	return New(cartas, razones, premios, canciones, frases)
}

func loadJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return nil
}

func loadCartas(path string) ([]Carta, error) {
	// estrellas_recompensa defaults to 1 when the fixture omits it.
	var raw []struct {
		ID                  int64  `json:"id"`
		Titulo              string `json:"titulo"`
		Contenido           string `json:"contenido"`
		EstrellasRecompensa *int   `json:"estrellas_recompensa"`
	}
	if err := loadJSON(path, &raw); err != nil {
		return nil, err
	}
	cartas := make([]Carta, 0, len(raw))
	for _, r := range raw {
		reward := 1
		if r.EstrellasRecompensa != nil {
			reward = *r.EstrellasRecompensa
		}
		cartas = append(cartas, Carta{
			ID:                  r.ID,
			Titulo:              r.Titulo,
			Contenido:           r.Contenido,
			EstrellasRecompensa: reward,
		})
	}
	return cartas, nil
}

func loadPremios(path string) ([]Premio, error) {
	// disponible defaults to true when the fixture omits it.
	var raw []struct {
		ID         int64  `json:"id"`
		Nombre     string `json:"nombre"`
		Costo      int    `json:"costo"`
		Emoji      string `json:"emoji"`
		Disponible *bool  `json:"disponible"`
	}
	if err := loadJSON(path, &raw); err != nil {
		return nil, err
	}
	premios := make([]Premio, 0, len(raw))
	for _, r := range raw {
		disponible := true
		if r.Disponible != nil {
			disponible = *r.Disponible
		}
		premios = append(premios, Premio{
			ID:         r.ID,
			Nombre:     r.Nombre,
			Costo:      r.Costo,
			Emoji:      r.Emoji,
			Disponible: disponible,
		})
	}
	return premios, nil
}

// Accessors return the backing slices; callers must not mutate them.

func (c *Catalog) Cartas() []Carta      { return c.cartas }
func (c *Catalog) Razones() []Razon     { return c.razones }
func (c *Catalog) Premios() []Premio    { return c.premios }
func (c *Catalog) Canciones() []Cancion { return c.canciones }
func (c *Catalog) Frases() []Frase      { return c.frases }

func (c *Catalog) CartaByID(id int64) (Carta, bool) {
	carta, ok := c.cartasByID[id]
	return carta, ok
}

func (c *Catalog) RazonByID(id int64) (Razon, bool) {
	razon, ok := c.razonesByID[id]
	return razon, ok
}

func (c *Catalog) PremioByID(id int64) (Premio, bool) {
	premio, ok := c.premiosByID[id]
	return premio, ok
}

func (c *Catalog) CancionByID(id int64) (Cancion, bool) {
	cancion, ok := c.cancionesByID[id]
	return cancion, ok
}

func (c *Catalog) FraseByID(id int64) (Frase, bool) {
	frase, ok := c.frasesByID[id]
	return frase, ok
}

// FrasesPorCategoria filters frases by category; empty category returns all.
func (c *Catalog) FrasesPorCategoria(categoria string) []Frase {
	if categoria == "" {
		return c.frases
	}
	var out []Frase
	for _, f := range c.frases {
		if f.Categoria == categoria {
			out = append(out, f)
		}
	}
	return out
}
