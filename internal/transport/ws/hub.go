// Package ws - websocket-канал дашборда. Hub реализует Renderer и ChartEngine
// и рассылает каждое изменение всем подключённым клиентам.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-viewer/internal/domain"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/indicator"
	"github.com/NastyaGoryachaya/crypto-viewer/internal/service/dashboard"
	"github.com/gorilla/websocket"
)

const (
	TypeCards       = "cards"
	TypeNoResults   = "no_results"
	TypeLoading     = "loading"
	TypeError       = "error"
	TypeChart       = "chart"
	TypeOverlays    = "overlays"
	TypeChartError  = "chart_error"
	TypeChartClosed = "chart_closed"
	TypeLastUpdated = "last_updated"

	// входящее от клиента
	TypeVisibility = "visibility"
)

const (
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = pongWait * 9 / 10
)

// Message - конверт всех сообщений канала.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type cardsPayload struct {
	Currency string                `json:"currency"`
	Coins    []domain.CoinSnapshot `json:"coins"`
}

type noResultsPayload struct {
	Term string `json:"term"`
}

type slotPayload struct {
	Slot dashboard.Slot `json:"slot"`
}

type errorPayload struct {
	Slot    dashboard.Slot `json:"slot,omitempty"`
	CoinID  string         `json:"coin_id,omitempty"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
}

type overlaysPayload struct {
	CoinID   string              `json:"coin_id"`
	Overlays []indicator.Overlay `json:"overlays"`
}

type lastUpdatedPayload struct {
	At time.Time `json:"at"`
}

type visibilityPayload struct {
	Visible bool `json:"visible"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub - набор подключённых клиентов. Последние карточки, график и время
// обновления запоминаются и отправляются новым клиентам сразу после подключения.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	replay  map[string][]byte

	upgrader     websocket.Upgrader
	onVisibility func(bool)
	logger       *slog.Logger
}

// NewHub - конструктор хаба.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		replay:  make(map[string][]byte),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// OnVisibility - куда сообщать о видимости дашборда: сообщения "visibility"
// от клиента, true при подключении и false, когда ушёл последний клиент.
func (h *Hub) OnVisibility(fn func(bool)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onVisibility = fn
}

// Clients - число подключённых клиентов.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP - апгрейд соединения и обслуживание клиента до разрыва.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", slog.String("err", err.Error()))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	h.logger.Info("ws client connected", slog.String("remote", r.RemoteAddr))

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	// порядок важен: график рисуется поверх уже показанных карточек
	for _, t := range []string{TypeCards, TypeNoResults, TypeLastUpdated, TypeChart} {
		if msg, ok := h.replay[t]; ok {
			c.send <- msg
		}
	}
	notify := h.onVisibility
	h.mu.Unlock()

	if notify != nil {
		notify(true)
	}
}

// unregister - клиент ушёл. Медленного клиента broadcast уже удалил из набора,
// но о видимости сообщаем и в этом случае: broadcast вызывается под блокировкой
// контроллера и сам звать колбэк не может.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	last := len(h.clients) == 0
	notify := h.onVisibility
	h.mu.Unlock()

	if last && notify != nil {
		notify(false)
	}
}

// readPump - входящие сообщения клиента. Понимает только "visibility".
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
		h.logger.Info("ws client disconnected")
	}()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed", slog.String("err", err.Error()))
			}
			return
		}
		if msg.Type != TypeVisibility {
			h.logger.Debug("ws message ignored", slog.String("type", msg.Type))
			continue
		}
		var p visibilityPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			h.logger.Warn("ws bad visibility payload", slog.String("err", err.Error()))
			continue
		}
		h.mu.Lock()
		notify := h.onVisibility
		h.mu.Unlock()
		if notify != nil {
			notify(p.Visible)
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// broadcast - разослать сообщение всем. Медленный клиент с полным буфером
// отключается, а не тормозит остальных.
func (h *Hub) broadcast(typ string, payload any, remember bool) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("ws payload encode failed", slog.String("type", typ), slog.String("err", err.Error()))
		return
	}
	msg, err := json.Marshal(Message{Type: typ, Payload: raw})
	if err != nil {
		h.logger.Error("ws message encode failed", slog.String("type", typ), slog.String("err", err.Error()))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if remember {
		h.replay[typ] = msg
	}
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("ws client too slow, dropping")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) forget(types ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range types {
		delete(h.replay, t)
	}
}

// Renderer

func (h *Hub) RenderLoading(slot dashboard.Slot) {
	h.broadcast(TypeLoading, slotPayload{Slot: slot}, false)
}

func (h *Hub) RenderCards(currency string, coins []domain.CoinSnapshot) {
	if coins == nil {
		coins = []domain.CoinSnapshot{}
	}
	h.forget(TypeNoResults)
	h.broadcast(TypeCards, cardsPayload{Currency: currency, Coins: coins}, true)
}

func (h *Hub) RenderNoResults(term string) {
	h.forget(TypeCards)
	h.broadcast(TypeNoResults, noResultsPayload{Term: term}, true)
}

func (h *Hub) RenderError(slot dashboard.Slot, f dashboard.Failure) {
	h.broadcast(TypeError, errorPayload{Slot: slot, Code: string(f.Code), Message: f.Message}, false)
}

func (h *Hub) RenderLastUpdated(at time.Time) {
	h.broadcast(TypeLastUpdated, lastUpdatedPayload{At: at}, true)
}

// ChartEngine

func (h *Hub) DrawChart(chart dashboard.Chart) {
	h.broadcast(TypeChart, chart, true)
}

// ReplaceOverlays - клиент меняет только слои оверлеев, ценовой ряд остаётся.
// Запомненный график при этом тоже обновляется.
func (h *Hub) ReplaceOverlays(coinID string, overlays []indicator.Overlay) {
	if overlays == nil {
		overlays = []indicator.Overlay{}
	}
	h.patchReplayOverlays(coinID, overlays)
	h.broadcast(TypeOverlays, overlaysPayload{CoinID: coinID, Overlays: overlays}, false)
}

func (h *Hub) patchReplayOverlays(coinID string, overlays []indicator.Overlay) {
	h.mu.Lock()
	defer h.mu.Unlock()

	raw, ok := h.replay[TypeChart]
	if !ok {
		return
	}
	var msg Message
	var chart dashboard.Chart
	if err := json.Unmarshal(raw, &msg); err != nil {
		return
	}
	if err := json.Unmarshal(msg.Payload, &chart); err != nil || chart.Coin.ID != coinID {
		return
	}
	chart.Overlays = overlays
	payload, err := json.Marshal(chart)
	if err != nil {
		return
	}
	if updated, err := json.Marshal(Message{Type: TypeChart, Payload: payload}); err == nil {
		h.replay[TypeChart] = updated
	}
}

func (h *Hub) ShowChartError(coinID string, f dashboard.Failure) {
	h.broadcast(TypeChartError, errorPayload{CoinID: coinID, Code: string(f.Code), Message: f.Message}, false)
}

func (h *Hub) CloseChart() {
	h.forget(TypeChart)
	h.broadcast(TypeChartClosed, struct{}{}, false)
}
