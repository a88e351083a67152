package inventory

// Velocity resume la actividad de ventas de un par producto/bodega dentro de
// la ventana de análisis.
type Velocity struct {
	AvgDailySales    float64 // promedio por día con ventas (días sin ventas no cuentan)
	TotalRecentSales int     // suma de unidades vendidas en la ventana
}

// CalculateVelocity calcula la velocidad de ventas a partir de los totales
// diarios de la ventana. Cada elemento es la suma de unidades vendidas en un
// día con al menos una venta; los días sin ventas no aparecen en el slice y por
// eso no diluyen el promedio. Sin historial devuelve 0/0, nunca error.
func CalculateVelocity(dailyTotals []int) Velocity {
	if len(dailyTotals) == 0 {
		return Velocity{}
	}
	total := 0
	for _, qty := range dailyTotals {
		total += qty
	}
	return Velocity{
		AvgDailySales:    float64(total) / float64(len(dailyTotals)),
		TotalRecentSales: total,
	}
}
