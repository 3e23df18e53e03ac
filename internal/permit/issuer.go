package permit

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/gamenft/asset-portal/internal/adapter"
	"github.com/gamenft/asset-portal/internal/domain"
	"github.com/gamenft/asset-portal/internal/store/schema"
)

// permitDomainName and permitDomainVersion are hardcoded in the NFT
// contract's constructor and must match it exactly
const (
	permitDomainName    = "GameNFT"
	permitDomainVersion = "1"
)

// PermitData is the typed message the contract verifies. Field order
// matches the Permit struct in the contract.
type PermitData struct {
	TokenID  uint64 `json:"tokenId"`
	Receiver string `json:"receiver"`
	TokenURI string `json:"tokenURI"`
	Deadline int64  `json:"deadline"`
}

// MintingPermit is the response returned to clients requesting mint data
type MintingPermit struct {
	ContractAddress string     `json:"contractAddress"`
	PermitData      PermitData `json:"permitData"`
	Signature       string     `json:"signature"`
}

// Issuer signs mint permits with the backend signer key
//
//go:generate mockgen -source=issuer.go -destination=../mocks/permit_issuer.go -package=mocks -mock_names=Issuer=MockIssuer
type Issuer interface {
	// IssuePermit builds and signs an EIP-712 mint permit for the item
	IssuePermit(ctx context.Context, item *schema.Item, collection *schema.Collection, player *schema.Player) (*MintingPermit, error)
}

type issuer struct {
	signerKey      *ecdsa.PrivateKey
	chainID        uint64
	validityWindow time.Duration
	clock          adapter.Clock
}

// NewIssuer parses the hex-encoded signer key and returns an Issuer
func NewIssuer(signerKeyHex string, chainID uint64, validityWindow time.Duration, clock adapter.Clock) (Issuer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(signerKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signer key: %w", err)
	}
	return &issuer{
		signerKey:      key,
		chainID:        chainID,
		validityWindow: validityWindow,
		clock:          clock,
	}, nil
}

// IssuePermit builds and signs an EIP-712 mint permit for the item
func (i *issuer) IssuePermit(_ context.Context, item *schema.Item, collection *schema.Collection, player *schema.Player) (*MintingPermit, error) {
	if collection.ContractAddress == "" {
		return nil, domain.ErrNoContractAddress
	}
	if player.PlayerAddress == nil || *player.PlayerAddress == "" {
		return nil, domain.ErrNoPlayerAddress
	}

	receiver := domain.NormalizeAddress(*player.PlayerAddress)
	// The contract concatenates its base URI with this value
	tokenURI := strconv.FormatInt(item.PK, 10)
	deadline := i.clock.Now().Unix() + int64(i.validityWindow.Seconds())

	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Permit": []apitypes.Type{
				{Name: "tokenId", Type: "uint256"},
				{Name: "receiver", Type: "address"},
				{Name: "tokenURI", Type: "string"},
				{Name: "deadline", Type: "uint256"},
			},
		},
		PrimaryType: "Permit",
		Domain: apitypes.TypedDataDomain{
			Name:              permitDomainName,
			Version:           permitDomainVersion,
			ChainId:           math.NewHexOrDecimal256(int64(i.chainID)),
			VerifyingContract: collection.ContractAddress,
		},
		Message: apitypes.TypedDataMessage{
			"tokenId":  (*math.HexOrDecimal256)(new(big.Int).SetUint64(item.TokenID)),
			"receiver": receiver,
			"tokenURI": tokenURI,
			"deadline": math.NewHexOrDecimal256(deadline),
		},
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, fmt.Errorf("failed to hash permit: %w", err)
	}

	signature, err := crypto.Sign(digest, i.signerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign permit: %w", err)
	}
	// Contracts expect V as 27/28
	signature[64] += 27

	return &MintingPermit{
		ContractAddress: collection.ContractAddress,
		PermitData: PermitData{
			TokenID:  item.TokenID,
			Receiver: receiver,
			TokenURI: tokenURI,
			Deadline: deadline,
		},
		Signature: hexutil.Encode(signature),
	}, nil
}
