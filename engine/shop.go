package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/aelyra/constants"
	"github.com/lixenwraith/aelyra/core"
)

// ShopItem is one purchasable special attack upgrade
type ShopItem struct {
	Tier        int
	Name        string
	Description string
	Price       int
}

// ShopItems returns the upgrades in display order
func ShopItems() []ShopItem {
	return []ShopItem{
		{Tier: constants.SpecialTierMega, Name: "Mega Special", Description: "250 damage, larger blast", Price: constants.SpecialTierPrice[constants.SpecialTierMega]},
		{Tier: constants.SpecialTierUltra, Name: "Ultra Special", Description: "500 damage, huge blast", Price: constants.SpecialTierPrice[constants.SpecialTierUltra]},
	}
}

// Purchase buys a special attack tier. Gold only drops here and only when gold >= price.
// Tiers only go up; buying Ultra directly skips Mega.
func (ctx *GameContext) Purchase(tier int) error {
	p := ctx.Player
	if tier <= constants.SpecialTierBase || tier >= len(constants.SpecialTierPrice) {
		return fmt.Errorf("%w: %d", ErrUnknownTier, tier)
	}
	if tier <= p.SpecialTier {
		ctx.PlaySound(core.CueDenied)
		return fmt.Errorf("%w: have %d, want %d", ErrTierOwned, p.SpecialTier, tier)
	}

	price := constants.SpecialTierPrice[tier]
	if p.Gold < price {
		ctx.PlaySound(core.CueDenied)
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, price, p.Gold)
	}

	p.Gold -= price
	p.SpecialTier = tier
	ctx.PlaySound(core.CuePurchase)
	log.Printf("[%s] purchased special tier %d for %d gold", ctx.shortID(), tier, price)
	return nil
}
