package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gamenft/asset-portal/internal/api/rest/dto"
	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/gameserver"
	"github.com/gamenft/asset-portal/internal/permit"
	"github.com/gamenft/asset-portal/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateItem creates a new item with its metadata attributes
	// POST /items
	CreateItem(c *gin.Context)

	// GetItem retrieves a single item by its primary key
	// GET /items/:pk
	GetItem(c *gin.Context)

	// GetMintingData returns a signed EIP-712 mint permit for an item
	// GET /items/:pk/mint
	GetMintingData(c *gin.Context)

	// LinkPlayer links a game player identity with a wallet address
	// POST /game/:gameId/player
	LinkPlayer(c *gin.Context)

	// GetPlayer retrieves a player by playerId or playerAddress,
	// creating one when no match exists
	// GET /game/:gameId/player?playerId=<id>&playerAddress=<address>
	GetPlayer(c *gin.Context)

	// GetTokenMetadata serves the public OpenSea metadata document
	// GET /:itemPk
	GetTokenMetadata(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store    store.Store
	issuer   permit.Issuer
	notifier gameserver.Notifier
}

// NewHandler creates a new REST API handler
func NewHandler(s store.Store, issuer permit.Issuer, notifier gameserver.Notifier) Handler {
	return &handler{
		store:    s,
		issuer:   issuer,
		notifier: notifier,
	}
}

// parseIntParam parses a positive integer path parameter
func parseIntParam(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		respondValidationError(c, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return value, true
}

// validateURL checks that a string is an absolute http(s) URL
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %s", raw)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL: %s", raw)
	}
	return nil
}

// CreateItem creates a new item with its metadata attributes
func (h *handler) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if req.PlayerID == nil && req.PlayerAddress == nil {
		respondValidationError(c, "Either playerId or playerAddress must be provided")
		return
	}
	if req.PlayerAddress != nil && !domain.IsValidAddress(*req.PlayerAddress) {
		respondValidationError(c, "invalid playerAddress")
		return
	}
	if err := validateURL(req.Metadata.Image); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if req.Metadata.ExternalURL != nil {
		if err := validateURL(*req.Metadata.ExternalURL); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	ctx := c.Request.Context()

	if _, err := h.store.GetGameByID(ctx, req.GameID); err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			respondNotFound(c, fmt.Sprintf("Game with ID %d not found", req.GameID))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	attributes := make([]store.AttributeInput, 0, len(req.Metadata.Attributes))
	for _, attr := range req.Metadata.Attributes {
		attributes = append(attributes, store.AttributeInput{
			TraitType: attr.TraitType,
			Value:     string(attr.Value),
		})
	}

	item, err := h.store.CreateItem(ctx, store.CreateItemInput{
		GameID:        req.GameID,
		CollectionID:  req.CollectionID,
		PlayerID:      req.PlayerID,
		PlayerAddress: req.PlayerAddress,
		Name:          req.Metadata.Name,
		Description:   req.Metadata.Description,
		Image:         req.Metadata.Image,
		ExternalURL:   req.Metadata.ExternalURL,
		Attributes:    attributes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			respondNotFound(c, fmt.Sprintf("Collection with ID %d not found", req.CollectionID))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, dto.MapItem(item))
}

// GetItem retrieves a single item by its primary key
func (h *handler) GetItem(c *gin.Context) {
	pk, ok := parseIntParam(c, "pk")
	if !ok {
		return
	}

	item, err := h.store.GetItemByPK(c.Request.Context(), pk)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondNotFound(c, fmt.Sprintf("Item with PK %d not found", pk))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.MapItem(item))
}

// GetMintingData returns a signed EIP-712 mint permit for an item
func (h *handler) GetMintingData(c *gin.Context) {
	pk, ok := parseIntParam(c, "pk")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	item, err := h.store.GetItemByPK(ctx, pk)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondNotFound(c, fmt.Sprintf("Item with PK %d not found", pk))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	collection, err := h.store.GetCollectionByID(ctx, item.CollectionID)
	if err != nil {
		respondInternalError(c, err, "Internal server error")
		return
	}

	player, err := h.store.GetPlayerByPK(ctx, item.PlayerPK)
	if err != nil {
		respondInternalError(c, err, "Internal server error")
		return
	}

	minting, err := h.issuer.IssuePermit(ctx, item, collection, player)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoContractAddress):
			respondBadRequest(c, "Collection does not have a contract address")
		case errors.Is(err, domain.ErrNoPlayerAddress):
			respondBadRequest(c, "Player does not have a blockchain address")
		default:
			respondInternalError(c, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, minting)
}

// LinkPlayer links a game player identity with a wallet address
func (h *handler) LinkPlayer(c *gin.Context) {
	gameID, ok := parseIntParam(c, "gameId")
	if !ok {
		return
	}

	var req dto.LinkPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if !domain.IsValidAddress(req.PlayerAddress) {
		respondValidationError(c, "invalid playerAddress")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.store.GetGameByID(ctx, gameID); err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			respondNotFound(c, fmt.Sprintf("Game with ID %d not found", gameID))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	result, err := h.store.LinkPlayer(ctx, gameID, req.PlayerID, req.PlayerAddress)
	if err != nil {
		if errors.Is(err, domain.ErrAddressConflict) || errors.Is(err, domain.ErrPlayerIDConflict) {
			respondConflict(c, err.Error())
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	// Linking a wallet to an existing identity changes the effective
	// owner of the wallet's items
	for i := range result.ChangedItems {
		for _, attr := range result.ChangedItems[i].Attributes {
			if attr.TraitType == domain.UUIDTraitType {
				h.notifier.NotifyOwnerChange(ctx, attr.Value, result.Player.PlayerID)
				break
			}
		}
	}

	items, err := h.store.GetItemsByPlayer(ctx, result.Player.PK)
	if err != nil {
		respondInternalError(c, err, "Internal server error")
		return
	}

	response := dto.MapPlayer(result.Player, items)

	switch result.Status {
	case store.LinkStatusCreated:
		c.JSON(http.StatusCreated, response)
	case store.LinkStatusNotModified:
		response.Message = "Player already linked (not modified)"
		c.JSON(http.StatusOK, response)
	default:
		c.JSON(http.StatusOK, response)
	}
}

// GetPlayer retrieves a player by playerId or playerAddress, creating
// one when no match exists
func (h *handler) GetPlayer(c *gin.Context) {
	gameID, ok := parseIntParam(c, "gameId")
	if !ok {
		return
	}

	var playerID, playerAddress *string
	if v := c.Query("playerId"); v != "" {
		playerID = &v
	}
	if v := c.Query("playerAddress"); v != "" {
		if !domain.IsValidAddress(v) {
			respondValidationError(c, "invalid playerAddress")
			return
		}
		playerAddress = &v
	}
	if playerID == nil && playerAddress == nil {
		respondValidationError(c, "Either playerId or playerAddress must be provided")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.store.GetGameByID(ctx, gameID); err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			respondNotFound(c, fmt.Sprintf("Game with ID %d not found", gameID))
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	player, err := h.store.FindOrCreatePlayer(ctx, gameID, playerID, playerAddress)
	if err != nil {
		respondInternalError(c, err, "Internal server error")
		return
	}

	items, err := h.store.GetItemsByPlayer(ctx, player.PK)
	if err != nil {
		respondInternalError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.MapPlayer(player, items))
}

// GetTokenMetadata serves the public OpenSea metadata document
func (h *handler) GetTokenMetadata(c *gin.Context) {
	pk, ok := parseIntParam(c, "itemPk")
	if !ok {
		return
	}

	item, err := h.store.GetItemByPK(c.Request.Context(), pk)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			respondNotFound(c, "Item not found")
			return
		}
		respondInternalError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.MapOpenSeaMetadata(item))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
