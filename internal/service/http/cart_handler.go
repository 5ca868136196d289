package httpsvc

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cart/internal/domain"
	"github.com/vladislavdragonenkov/cart/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/cart/internal/metrics"
	"github.com/vladislavdragonenkov/cart/internal/session"
)

// SessionCookie — имя cookie с идентификатором сессии корзины.
const SessionCookie = "cart_session"

const (
	opView          = "view"
	opAdd           = "add"
	opSetQuantity   = "set_quantity"
	opSetQuantities = "set_quantities"
	opRemove        = "remove"
	opClear         = "clear"
)

// CartHandler реализует HTTP API корзины поверх доменной модели.
// Каждый запрос гидрирует корзину из сессии, применяет операцию и явно
// сохраняет результат — корзина не живёт дольше запроса.
type CartHandler struct {
	sessions *session.Manager
	binding  domain.Binding
	metrics  *metrics.CartMetrics
	producer *kafka.Producer // может быть nil, публикация опциональна
	logger   *log.Entry
}

// NewCartHandler конструирует обработчик с зависимостями.
func NewCartHandler(
	sessions *session.Manager,
	binding domain.Binding,
	cartMetrics *metrics.CartMetrics,
	producer *kafka.Producer,
	logger *log.Entry,
) *CartHandler {
	if logger == nil {
		logger = log.New().WithField("component", "cart-handler")
	}
	return &CartHandler{
		sessions: sessions,
		binding:  binding,
		metrics:  cartMetrics,
		producer: producer,
		logger:   logger,
	}
}

// Register навешивает маршруты корзины на mux.
func (h *CartHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /cart", h.view)
	mux.HandleFunc("POST /cart/items", h.addItem)
	mux.HandleFunc("PUT /cart/items", h.setQuantity)
	mux.HandleFunc("PUT /cart", h.setQuantities)
	mux.HandleFunc("DELETE /cart/items/{pk}", h.removeItem)
	mux.HandleFunc("DELETE /cart", h.clear)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	// Quantity по умолчанию 1, как при добавлении товара кнопкой.
	Quantity *int `json:"quantity"`
}

type setQuantityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type setQuantitiesRequest struct {
	Quantities map[string]int `json:"quantities"`
}

type lineView struct {
	ProductPK      string `json:"product_pk"`
	Quantity       int    `json:"quantity"`
	UnitPriceMinor *int64 `json:"unit_price_minor,omitempty"`
}

type cartView struct {
	ItemsTotal      int        `json:"items_total"`
	TotalQuantity   int        `json:"total_quantity"`
	PriceSupported  bool       `json:"price_supported"`
	TotalPriceMinor *int64     `json:"total_price_minor,omitempty"`
	Lines           []lineView `json:"lines"`
}

func (h *CartHandler) view(w http.ResponseWriter, r *http.Request) {
	h.withCart(w, r, opView, func(_ string, _ *domain.Cart) (bool, error) {
		return false, nil
	})
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		h.writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	h.withCart(w, r, opAdd, func(_ string, cart *domain.Cart) (bool, error) {
		return true, cart.Add(r.Context(), req.ProductID, quantity)
	})
}

func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		h.writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	h.withCart(w, r, opSetQuantity, func(_ string, cart *domain.Cart) (bool, error) {
		return true, cart.SetQuantity(r.Context(), req.ProductID, req.Quantity)
	})
}

func (h *CartHandler) setQuantities(w http.ResponseWriter, r *http.Request) {
	var req setQuantitiesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Quantities) == 0 {
		h.writeError(w, http.StatusBadRequest, "quantities is required")
		return
	}

	h.withCart(w, r, opSetQuantities, func(_ string, cart *domain.Cart) (bool, error) {
		return true, cart.SetQuantities(r.Context(), req.Quantities)
	})
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	pk := r.PathValue("pk")

	h.withCart(w, r, opRemove, func(_ string, cart *domain.Cart) (bool, error) {
		return true, cart.Remove(r.Context(), pk)
	})
}

func (h *CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.withCart(w, r, opClear, func(sid string, cart *domain.Cart) (bool, error) {
		cart.Clear()
		return true, nil
	})
}

// withCart — общий каркас обработчика: сессия, гидрация, операция,
// явное сохранение (если mutate), ответ-снимок корзины.
func (h *CartHandler) withCart(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(sid string, cart *domain.Cart) (mutated bool, err error),
) {
	start := time.Now()
	defer func() {
		h.metrics.RecordOpDuration(op, time.Since(start))
	}()

	sid := h.sessionID(w, r)
	cart, err := domain.NewCart(r.Context(), h.sessions.Scope(sid), h.binding)
	if err != nil {
		h.fail(w, op, err)
		return
	}
	h.metrics.RecordHydrationDropped(cart.Dropped())

	mutated, err := fn(sid, cart)
	if err != nil {
		h.fail(w, op, err)
		return
	}

	if mutated {
		if err := cart.Save(r.Context()); err != nil {
			h.fail(w, op, err)
			return
		}
		h.metrics.RecordSaveSize(cart.ItemsTotal())
		h.publishEvent(op, sid, cart)
	}

	h.metrics.RecordOp(op)
	h.writeJSON(w, http.StatusOK, buildView(cart))
}

// sessionID возвращает идентификатор сессии из cookie, выдавая новый при
// его отсутствии.
func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	sid := h.sessions.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func (h *CartHandler) publishEvent(op, sid string, cart *domain.Cart) {
	if h.producer == nil {
		return
	}
	eventType := kafka.EventTypeCartSaved
	if op == opClear {
		eventType = kafka.EventTypeCartCleared
	}
	event := kafka.NewCartEvent(eventType, sid, cart.Name(), cart.ItemsTotal(), cart.TotalQuantity())
	// Публикация best-effort: запрос пользователя важнее события.
	if err := h.producer.PublishEvent(kafka.TopicCartEvents, sid, event); err != nil {
		h.logger.WithError(err).WithField("session_id", sid).Warn("failed to publish cart event")
	}
}

func buildView(cart *domain.Cart) cartView {
	view := cartView{
		ItemsTotal:     cart.ItemsTotal(),
		TotalQuantity:  cart.TotalQuantity(),
		PriceSupported: true,
		Lines:          make([]lineView, 0, cart.ItemsTotal()),
	}

	for _, line := range cart.Lines() {
		lv := lineView{ProductPK: line.Product.PK(), Quantity: line.Quantity}
		if priced, ok := line.Product.(domain.PricedProduct); ok {
			price := priced.UnitPriceMinor()
			lv.UnitPriceMinor = &price
		}
		view.Lines = append(view.Lines, lv)
	}

	total, err := cart.TotalPrice()
	if err != nil {
		// Тип товара без цены: итог не определён, но снимок корзины отдаём.
		view.PriceSupported = false
		return view
	}
	view.TotalPriceMinor = &total
	return view
}

func (h *CartHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *CartHandler) fail(w http.ResponseWriter, op string, err error) {
	h.metrics.RecordOpFailed(op)

	switch {
	case domain.IsNotFound(err):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrQuantityNegative):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.WithError(err).WithField("op", op).Error("cart operation failed")
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *CartHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *CartHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.WithError(err).Warn("failed to encode response")
	}
}
