package dashboard

import (
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
)

// Slot - логическая цель запроса. Новый запрос в тот же слот вытесняет предыдущий.
type Slot string

const (
	SlotListing Slot = "listing"
	SlotSearch  Slot = "search"
	SlotChart   Slot = "chart"
)

// ParseSlot - имя слота из внешнего ввода.
func ParseSlot(s string) (Slot, bool) {
	switch Slot(s) {
	case SlotListing, SlotSearch, SlotChart:
		return Slot(s), true
	default:
		return "", false
	}
}

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// slotState - состояние одного слота. generation растёт с каждым новым запросом;
// ответ применяется, только если поколение не изменилось.
type slotState struct {
	status     Status
	generation uint64
	failure    *Failure
}

// chartKey - для какой тройки монета/валюта/окно загружен ряд.
type chartKey struct {
	coinID   string
	currency string
	days     int
}

// appState - всё изменяемое состояние дашборда; принадлежит Controller.
type appState struct {
	selection domain.AppSelection
	toggles   domain.IndicatorToggleSet

	listing     []domain.CoinSnapshot // последний полный листинг
	presented   []domain.CoinSnapshot // что сейчас в сетке карточек
	noResults   bool
	lastSearch  string
	lastUpdated time.Time

	// нарисованный график; может отставать от selection.ActiveCoin, пока
	// ряд новой монеты не пришёл или не загрузился
	series     []domain.PricePoint
	seriesCoin domain.CoinSnapshot
	seriesKey  chartKey
	overlays   []indicator.Overlay

	visible bool
	slots   map[Slot]*slotState
}

func newAppState(currency string, days int) appState {
	return appState{
		selection: domain.AppSelection{Currency: currency, TimeframeDays: days},
		visible:   true,
		slots: map[Slot]*slotState{
			SlotListing: {status: StatusIdle},
			SlotSearch:  {status: StatusIdle},
			SlotChart:   {status: StatusIdle},
		},
	}
}

// SlotView - снимок слота для адаптеров.
type SlotView struct {
	Status  Status   `json:"status"`
	Failure *Failure `json:"failure,omitempty"`
}

// View - копия состояния для UI-адаптеров.
type View struct {
	Selection   domain.AppSelection       `json:"selection"`
	Toggles     domain.IndicatorToggleSet `json:"toggles"`
	Coins       []domain.CoinSnapshot     `json:"coins"`
	NoResults   bool                      `json:"no_results"`
	SearchTerm  string                    `json:"search_term,omitempty"`
	LastUpdated *time.Time                `json:"last_updated,omitempty"`
	Chart       *Chart                    `json:"chart,omitempty"`
	Visible     bool                      `json:"visible"`
	Slots       map[Slot]SlotView         `json:"slots"`
}
