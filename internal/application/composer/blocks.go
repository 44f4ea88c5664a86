package composer

import (
	"github.com/jhoicas/partner-portal/internal/domain/access"
	"github.com/jhoicas/partner-portal/internal/domain/entity"
)

// Block descriptor de un bloque de UI a montar. No contiene markup: solo qué montar y con qué datos.
type Block struct {
	ID     string
	Slot   string
	Module entity.ModuleID
	Props  map[string]any
}

// Slots de página.
const (
	SlotHeader  = "header"
	SlotNav     = "nav"
	SlotNotice  = "notice"
	SlotMain    = "main"
	SlotAside   = "aside"
	SlotFooter  = "footer"
	SlotOverlay = "overlay"
	SlotCards   = "cards"
)

// Slots exclusivos: siempre exactamente un bloque (o un placeholder mientras la sesión está pendiente).
const (
	SlotEditorAction    = "editor_action"
	SlotDeployAction    = "deploy_action"
	SlotSettingsAdmin   = "settings_admin"
	SlotAutomationPanel = "automation_panel"
	SlotMiningPanel     = "mining_panel"
)

// PlaceholderID bloque transitorio de un slot exclusivo mientras no hay identidad.
const PlaceholderID = "placeholder"

type propsFunc func(c *composeCtx) map[string]any

// blockSpec bloque registrado: módulo de tenant (opcional) + requisito del gate (opcional).
type blockSpec struct {
	id     string
	slot   string
	module entity.ModuleID
	req    access.Requirement
	props  propsFunc
}

// exclusiveSpec slot con dos candidatos mutuamente excluyentes: primary se monta si su
// requisito pasa; en caso contrario fallback. fallback no lleva requisito propio.
type exclusiveSpec struct {
	slot     string
	module   entity.ModuleID
	primary  blockSpec
	fallback blockSpec
}

// item elemento ordenado de una página: bloque, slot exclusivo o generador dinámico.
type item struct {
	block     *blockSpec
	exclusive *exclusiveSpec
	dynamic   func(c *composeCtx) []Block
}

func one(b blockSpec) item { return item{block: &b} }

func either(e exclusiveSpec) item { return item{exclusive: &e} }

func dyn(f func(*composeCtx) []Block) item { return item{dynamic: f} }
