package normalize

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/betbot/gosea/sea/types"
)

// TokenFromJSON converts a payment token descriptor.
func TokenFromJSON(raw TokenJSON) (*types.FungibleToken, error) {
	const record = "token"
	if raw.Symbol == "" {
		return nil, missing(record, "symbol")
	}
	if raw.Address == "" {
		return nil, missing(record, "address")
	}
	if !common.IsHexAddress(raw.Address) {
		return nil, invalid(record, "address", errors.Errorf("not a hex address: %q", raw.Address))
	}
	token := &types.FungibleToken{
		Name:     raw.Name,
		Symbol:   raw.Symbol,
		Decimals: int(raw.Decimals),
		Address:  raw.Address,
		ImageURL: raw.ImageURL,
	}
	if raw.EthPrice != nil {
		p := *raw.EthPrice
		token.EthPrice = &p
	}
	if raw.UsdPrice != nil {
		p := *raw.UsdPrice
		token.UsdPrice = &p
	}
	return token, nil
}

// AccountFromJSON converts an account reference.
func AccountFromJSON(raw AccountJSON) (*types.Account, error) {
	const record = "account"
	if raw.Address == "" {
		return nil, missing(record, "address")
	}
	if !common.IsHexAddress(raw.Address) {
		return nil, invalid(record, "address", errors.Errorf("not a hex address: %q", raw.Address))
	}
	return &types.Account{
		Address:       raw.Address,
		Config:        raw.Config,
		ProfileImgURL: raw.ProfileImgURL,
		User:          UserFromJSON(raw.User),
	}, nil
}

// UserFromJSON returns nil when the account has no user profile.
func UserFromJSON(raw *UserJSON) *types.User {
	if raw == nil {
		return nil
	}
	return &types.User{Username: raw.Username}
}
