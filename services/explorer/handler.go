package explorer

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"graphsense-dashboard/pkg/export"
	"graphsense-dashboard/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	Version = "Version 0.3.2"

	currencyKey = "currency"

	jsonListLimit      = 2500
	addressExportLimit = 1000
	clusterExportLimit = 500
)

type Handler struct {
	service    Service
	storage    storage.Client
	currencies []string
	logger     *zap.SugaredLogger
}

func NewHandler(service Service, storageClient storage.Client, currencies []string, logger *zap.SugaredLogger) (*Handler, error) {
	if service == nil {
		return nil, errors.New("[explorer_handler] invalid explorer service")
	}
	if storageClient == nil {
		return nil, errors.New("[explorer_handler] invalid storage client")
	}
	if len(currencies) == 0 {
		return nil, errors.New("[explorer_handler] no currencies configured")
	}
	if logger == nil {
		return nil, errors.New("[explorer_handler] invalid logger")
	}

	return &Handler{service: service, storage: storageClient, currencies: currencies, logger: logger}, nil
}

// SetupRoutes registers the landing page, search and every currency scoped page. The
// returned group lets other services add routes below the currency segment; they
// must put ValidateCurrency in front of their own handlers. The group carries no
// middleware of its own so paths no route claims still fall through to the 404.
func (h *Handler) SetupRoutes(router fiber.Router) fiber.Router {
	router.Get("/", h.LandingHandler)
	router.Get("/search", h.SearchHandler)

	cur := router.Group("/:currency")
	v := h.ValidateCurrency

	cur.Get("/query_term_suggestions", v, h.SuggestionsHandler)

	cur.Get("/address/:address", v, h.AddressHandler)
	cur.Get("/address/:address/transactions.json", v, h.AddressTransactionsHandler)
	cur.Get("/address/:address/tags.json", v, h.AddressTagsHandler)
	cur.Get("/address/:address/tags.csv", v, h.AddressTagsCSVHandler)
	cur.Get("/address/:address/egonet.json", v, h.AddressEgonetHandler)
	cur.Get("/address/:address/egonet/nodes.csv", v, h.AddressEgonetNodesHandler)
	cur.Get("/address/:address/egonet/edges.csv", v, h.AddressEgonetEdgesHandler)

	cur.Get("/tx/:hash", v, h.TransactionHandler)

	cur.Get("/block/:height/transactions.json", v, h.BlockTransactionsHandler)
	cur.Get("/block/:heightOrHash", v, h.BlockHandler)

	cur.Get("/cluster/:id", v, h.ClusterHandler)
	cur.Get("/cluster/:id/addresses.json", v, h.ClusterAddressesHandler)
	cur.Get("/cluster/:id/tags.json", v, h.ClusterTagsHandler)
	cur.Get("/cluster/:id/tags.csv", v, h.ClusterTagsCSVHandler)
	cur.Get("/cluster/:id/egonet.json", v, h.ClusterEgonetHandler)
	cur.Get("/cluster/:id/egonet/nodes.csv", v, h.ClusterEgonetNodesHandler)
	cur.Get("/cluster/:id/egonet/edges.csv", v, h.ClusterEgonetEdgesHandler)

	return cur
}

// ValidateCurrency rejects currency segments outside the configured keyspaces.
func (h *Handler) ValidateCurrency(c *fiber.Ctx) error {
	cur, err := storage.ParseCurrency(c.Params("currency"), h.currencies)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	c.Locals(currencyKey, cur)
	return c.Next()
}

// CurrencyOf returns the currency stored by ValidateCurrency.
func CurrencyOf(c *fiber.Ctx) storage.Currency {
	cur, _ := c.Locals(currencyKey).(storage.Currency)
	return cur
}

func param(c *fiber.Ctx, key string) string {
	v := c.Params(key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (h *Handler) render(c *fiber.Ctx, view, title string, data fiber.Map) error {
	data["Title"] = title
	data["Version"] = Version
	data["Currency"] = CurrencyOf(c).String()
	return c.Render("views/"+view, data)
}

// statusOf maps storage errors onto response codes.
func statusOf(err error) int {
	var remote *storage.RemoteError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, storage.ErrInvalidCurrency), errors.Is(err, storage.ErrInvalidDirection):
		return fiber.StatusBadRequest
	case errors.As(err, &remote) && remote.Timeout():
		return fiber.StatusGatewayTimeout
	case errors.As(err, &remote):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func (h *Handler) logFailure(c *fiber.Ctx, status int, err error) {
	if status >= fiber.StatusInternalServerError {
		h.logger.Errorw("request failed", "path", c.Path(), "status", status, "error", err)
	}
}

// pageError renders the error view; notFound is the message shown for unknown entities.
func (h *Handler) pageError(c *fiber.Ctx, err error, notFound string) error {
	status := statusOf(err)
	h.logFailure(c, status, err)

	msg := notFound
	if status != fiber.StatusNotFound {
		msg = "The storage service is currently unavailable, please try again later."
	}
	return h.render(c.Status(status), "error", "Error", fiber.Map{"Message": msg})
}

func (h *Handler) jsonError(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	h.logFailure(c, status, err)
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func sendCSV(c *fiber.Ctx, body []byte, err error) error {
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(body)
}

func (h *Handler) LandingHandler(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.UserContext())
	if err != nil {
		h.logger.Warnw("statistics unavailable", "error", err)
		stats = storage.Statistics{}
	}
	return h.render(c, "landing", "Home", fiber.Map{"Statistics": stats})
}

func (h *Handler) SearchHandler(c *fiber.Ctx) error {
	var q SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, err)
	}
	if err := Validate(q); err != nil {
		return badRequest(c, err)
	}

	raw := q.Currency
	if raw == "" {
		raw = h.currencies[0]
	}
	cur, err := storage.ParseCurrency(raw, h.currencies)
	if err != nil {
		return badRequest(c, err)
	}

	term := url.PathEscape(q.Query)
	switch ResolveSearch(q.Query) {
	case TargetBlock:
		return c.Redirect(fmt.Sprintf("/%s/block/%s", cur, term))
	case TargetTransaction:
		return c.Redirect(fmt.Sprintf("/%s/tx/%s", cur, term))
	case TargetAddress:
		return c.Redirect(fmt.Sprintf("/%s/address/%s", cur, term))
	}

	c.Locals(currencyKey, cur)
	return h.render(c.Status(fiber.StatusNotFound), "error", "Search",
		fiber.Map{"Message": fmt.Sprintf("Couldn't find any match for %q.", q.Query)})
}

func (h *Handler) SuggestionsHandler(c *fiber.Ctx) error {
	var q SuggestionsQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, err)
	}
	if err := Validate(q); err != nil {
		return badRequest(c, err)
	}
	limit, err := strconv.Atoi(q.MaxSuggestionItems)
	if err != nil || limit < 0 {
		return badRequest(c, errors.New("MaxSuggestionItems - is not a number"))
	}

	res, err := h.service.Suggestions(c.UserContext(), CurrencyOf(c), q.TermFragment, limit)
	if err != nil {
		return h.jsonError(c, err)
	}

	return c.Render("views/partials/suggestions", fiber.Map{
		"Currency":    CurrencyOf(c).String(),
		"Suggestions": res,
	})
}

func (h *Handler) AddressHandler(c *fiber.Ctx) error {
	address := param(c, "address")

	res, err := h.service.AddressPage(c.UserContext(), CurrencyOf(c), address)
	if err != nil {
		return h.pageError(c, err, fmt.Sprintf("The address %s cannot be found in the blockchain.", address))
	}

	return h.render(c, "address", "Address "+address, fiber.Map{"Address": res})
}

func (h *Handler) AddressTransactionsHandler(c *fiber.Ctx) error {
	res, err := h.storage.AddressTransactions(c.UserContext(), CurrencyOf(c), param(c, "address"), jsonListLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) AddressTagsHandler(c *fiber.Ctx) error {
	res, err := h.storage.AddressTags(c.UserContext(), CurrencyOf(c), param(c, "address"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) AddressTagsCSVHandler(c *fiber.Ctx) error {
	res, err := h.storage.AddressTags(c.UserContext(), CurrencyOf(c), param(c, "address"))
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.Tags(res)
	return sendCSV(c, body, err)
}

func egonetParams(c *fiber.Ctx) (storage.Direction, int, error) {
	var q EgonetQuery
	if err := c.QueryParser(&q); err != nil {
		return "", 0, err
	}
	if err := Validate(q); err != nil {
		return "", 0, err
	}

	direction, err := storage.ParseDirection(q.Direction)
	if err != nil {
		return "", 0, err
	}
	limit := storage.DefaultEgonetLimit
	if q.Limit != "" {
		limit, _ = strconv.Atoi(q.Limit)
	}
	return direction, limit, nil
}

func (h *Handler) AddressEgonetHandler(c *fiber.Ctx) error {
	direction, limit, err := egonetParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.storage.AddressEgonet(c.UserContext(), CurrencyOf(c), param(c, "address"), direction, limit)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) AddressEgonetNodesHandler(c *fiber.Ctx) error {
	res, err := h.storage.AddressEgonet(c.UserContext(), CurrencyOf(c), param(c, "address"), storage.DirectionAll, addressExportLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.EgonetNodes(export.AddressIDColumn, res.Nodes)
	return sendCSV(c, body, err)
}

func (h *Handler) AddressEgonetEdgesHandler(c *fiber.Ctx) error {
	res, err := h.storage.AddressEgonet(c.UserContext(), CurrencyOf(c), param(c, "address"), storage.DirectionAll, addressExportLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.EgonetEdges(res.Edges)
	return sendCSV(c, body, err)
}

func (h *Handler) TransactionHandler(c *fiber.Ctx) error {
	hash := param(c, "hash")

	tx, err := h.service.TransactionPage(c.UserContext(), CurrencyOf(c), hash)
	if err != nil {
		return h.pageError(c, err, fmt.Sprintf("The transaction %s cannot be found in the blockchain.", hash))
	}

	return h.render(c, "transaction", "Transaction "+hash, fiber.Map{"Tx": tx})
}

func (h *Handler) BlockHandler(c *fiber.Ctx) error {
	id := param(c, "heightOrHash")

	block, err := h.service.BlockPage(c.UserContext(), CurrencyOf(c), id)
	if err != nil {
		return h.pageError(c, err, fmt.Sprintf("The block %s cannot be found in the blockchain.", id))
	}

	return h.render(c, "block", "Block "+id, fiber.Map{"Block": block})
}

func (h *Handler) BlockTransactionsHandler(c *fiber.Ctx) error {
	res, err := h.storage.BlockTransactions(c.UserContext(), CurrencyOf(c), param(c, "height"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) ClusterHandler(c *fiber.Ctx) error {
	id := param(c, "id")

	page, err := h.service.ClusterPage(c.UserContext(), CurrencyOf(c), id)
	if err != nil {
		return h.pageError(c, err, fmt.Sprintf("The cluster %s cannot be found.", id))
	}

	return h.render(c, "cluster", "Cluster "+id, fiber.Map{"Cluster": page})
}

func (h *Handler) ClusterAddressesHandler(c *fiber.Ctx) error {
	res, err := h.storage.ClusterAddresses(c.UserContext(), CurrencyOf(c), param(c, "id"), jsonListLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) ClusterTagsHandler(c *fiber.Ctx) error {
	res, err := h.storage.ClusterTags(c.UserContext(), CurrencyOf(c), param(c, "id"))
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) ClusterTagsCSVHandler(c *fiber.Ctx) error {
	res, err := h.storage.ClusterTags(c.UserContext(), CurrencyOf(c), param(c, "id"))
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.Tags(res)
	return sendCSV(c, body, err)
}

// ClusterEgonetHandler drops self references from the cluster neighbourhood.
func (h *Handler) ClusterEgonetHandler(c *fiber.Ctx) error {
	direction, limit, err := egonetParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	res, err := h.storage.ClusterEgonet(c.UserContext(), CurrencyOf(c), param(c, "id"), direction, limit)
	if err != nil {
		return h.jsonError(c, err)
	}
	return c.JSON(storage.DropSelfLoops(*res))
}

func (h *Handler) ClusterEgonetNodesHandler(c *fiber.Ctx) error {
	res, err := h.storage.ClusterEgonet(c.UserContext(), CurrencyOf(c), param(c, "id"), storage.DirectionAll, clusterExportLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.EgonetNodes(export.ClusterIDColumn, res.Nodes)
	return sendCSV(c, body, err)
}

func (h *Handler) ClusterEgonetEdgesHandler(c *fiber.Ctx) error {
	res, err := h.storage.ClusterEgonet(c.UserContext(), CurrencyOf(c), param(c, "id"), storage.DirectionAll, clusterExportLimit)
	if err != nil {
		return h.jsonError(c, err)
	}
	body, err := export.EgonetEdges(res.Edges)
	return sendCSV(c, body, err)
}
