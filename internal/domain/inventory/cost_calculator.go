package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una entrada de mercadería.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func WeightedAverageCost(stockActual int, costoActual decimal.Decimal, cantEntrada int, costoEntrada decimal.Decimal) decimal.Decimal {
	stock := decimal.NewFromInt(int64(stockActual))
	entrada := decimal.NewFromInt(int64(cantEntrada))
	sum := stock.Add(entrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stock.Mul(costoActual).Add(entrada.Mul(costoEntrada))
	return num.Div(sum).Round(2)
}

// TotalCost valor de un movimiento: cantidad con signo por costo unitario, a 2 decimales.
func TotalCost(quantity int, unitCost decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(unitCost).Round(2)
}
