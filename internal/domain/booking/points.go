package booking

import "math"

// ===============================
// Loyalty Points
// ===============================

const (
	PrepayPointsMultiplier   = 1.5
	PayLaterPointsMultiplier = 1.0
)

// PointsForBooking calcula os pontos ganhos sobre o valor cobrado,
// arredondando para cima. Prepay ganha x1.5; pay-later ganha x1.0,
// creditado apenas quando o pagamento é acertado na barbearia.
func PointsForBooking(chargedPrice float64, pm PaymentMethod) int {
	multiplier := PayLaterPointsMultiplier
	if pm == PaymentPrepay {
		multiplier = PrepayPointsMultiplier
	}
	return int(math.Ceil(chargedPrice * multiplier))
}

// CancellationPointsDeduction é a dedução fixa de pontos no cancelamento:
// ceil do valor cobrado, independente da fração reembolsada.
func CancellationPointsDeduction(chargedPrice float64) int {
	return int(math.Ceil(chargedPrice))
}

// DiscountedPrice aplica o desconto de uma recompensa, nunca negativo.
func DiscountedPrice(price, discount float64) float64 {
	if discount >= price {
		return 0
	}
	return price - discount
}
