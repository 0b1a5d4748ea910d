package types

import (
	"time"

	"gorm.io/datatypes"
)

// PremioReclamado is one claim record appended to the singleton state.
type PremioReclamado struct {
	PremioID       int64     `json:"premio_id"`
	FechaReclamado time.Time `json:"fecha_reclamado"`
}

// EstadoApp is the single application-state row. Exactly one row exists;
// it is seeded at startup and every mutation rewrites the whole row.
type EstadoApp struct {
	ID                   uint                                 `gorm:"primaryKey" json:"-"`
	PuntosConsideracion  int                                  `gorm:"not null;default:0;column:puntos_consideracion" json:"puntos_consideracion"`
	Estrellas            int                                  `gorm:"not null;default:0;column:estrellas" json:"estrellas"`
	RazonesDesbloqueadas datatypes.JSONSlice[int64]           `gorm:"column:razones_desbloqueadas" json:"razones_desbloqueadas"`
	CartasLeidas         datatypes.JSONSlice[int64]           `gorm:"column:cartas_leidas" json:"cartas_leidas"`
	CancionesEscuchadas  datatypes.JSONSlice[int64]           `gorm:"column:canciones_escuchadas" json:"canciones_escuchadas"`
	PremiosReclamados    datatypes.JSONSlice[PremioReclamado] `gorm:"column:premios_reclamados" json:"premios_reclamados"`
	CreatedAt            time.Time                            `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time                            `gorm:"not null" json:"updated_at"`
}

func (EstadoApp) TableName() string {
	return "estado_app"
}

// NewEstadoApp returns the default state with all tracking lists empty,
// so responses serialize them as [] instead of null.
func NewEstadoApp() *EstadoApp {
	return &EstadoApp{
		RazonesDesbloqueadas: datatypes.JSONSlice[int64]{},
		CartasLeidas:         datatypes.JSONSlice[int64]{},
		CancionesEscuchadas:  datatypes.JSONSlice[int64]{},
		PremiosReclamados:    datatypes.JSONSlice[PremioReclamado]{},
	}
}

func (e *EstadoApp) HaLeidoCarta(cartaID int64) bool {
	return containsID(e.CartasLeidas, cartaID)
}

func (e *EstadoApp) HaEscuchadoCancion(cancionID int64) bool {
	return containsID(e.CancionesEscuchadas, cancionID)
}

func (e *EstadoApp) HaDesbloqueadoRazon(razonID int64) bool {
	return containsID(e.RazonesDesbloqueadas, razonID)
}

func (e *EstadoApp) HaReclamadoPremio(premioID int64) bool {
	for _, p := range e.PremiosReclamados {
		if p.PremioID == premioID {
			return true
		}
	}
	return false
}

// MarcarCartaLeida records the card as read. Idempotent.
func (e *EstadoApp) MarcarCartaLeida(cartaID int64) {
	if !e.HaLeidoCarta(cartaID) {
		e.CartasLeidas = append(e.CartasLeidas, cartaID)
	}
}

// MarcarCancionEscuchada records the song as listened. Idempotent.
func (e *EstadoApp) MarcarCancionEscuchada(cancionID int64) {
	if !e.HaEscuchadoCancion(cancionID) {
		e.CancionesEscuchadas = append(e.CancionesEscuchadas, cancionID)
	}
}

// DesbloquearRazon records the reason as unlocked. Idempotent.
func (e *EstadoApp) DesbloquearRazon(razonID int64) {
	if !e.HaDesbloqueadoRazon(razonID) {
		e.RazonesDesbloqueadas = append(e.RazonesDesbloqueadas, razonID)
	}
}

// ReclamarPremio appends a claim record with the given timestamp. The
// caller is responsible for checking the claim is allowed.
func (e *EstadoApp) ReclamarPremio(premioID int64, fecha time.Time) {
	e.PremiosReclamados = append(e.PremiosReclamados, PremioReclamado{
		PremioID:       premioID,
		FechaReclamado: fecha,
	})
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
