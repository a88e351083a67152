package inventory

import "math"

// Niveles de urgencia de reposición.
const (
	UrgencyCritical = "CRITICAL"
	UrgencyHigh     = "HIGH"
	UrgencyMedium   = "MEDIUM"
	UrgencyLow      = "LOW"
)

// Projection proyecta el agotamiento de stock de un producto en una bodega.
// DaysUntilStockout es nil cuando no hay señal de ventas con la que proyectar.
type Projection struct {
	DaysUntilStockout *int
	Urgency           string
}

// ProjectStockout clasifica la urgencia de reposición. Reglas, en orden:
//  1. stock en cero: 0 días, CRITICAL (sin importar la velocidad)
//  2. sin velocidad de ventas: días indefinidos; LOW si el stock supera la
//     mitad del umbral, MEDIUM si no
//  3. con velocidad: floor(stock/velocidad); <=7 CRITICAL, <=14 HIGH,
//     <=30 MEDIUM, resto LOW
func ProjectStockout(currentStock int, avgDailySales float64, lowStockThreshold int) Projection {
	if currentStock == 0 {
		days := 0
		return Projection{DaysUntilStockout: &days, Urgency: UrgencyCritical}
	}

	if avgDailySales <= 0 {
		urgency := UrgencyMedium
		if float64(currentStock) > float64(lowStockThreshold)*0.5 {
			urgency = UrgencyLow
		}
		return Projection{Urgency: urgency}
	}

	days := int(float64(currentStock) / avgDailySales)
	urgency := UrgencyLow
	switch {
	case days <= 7:
		urgency = UrgencyCritical
	case days <= 14:
		urgency = UrgencyHigh
	case days <= 30:
		urgency = UrgencyMedium
	}
	return Projection{DaysUntilStockout: &days, Urgency: urgency}
}

// CoverageRatio expresa el stock actual como porcentaje del umbral de alerta,
// redondeado a 1 decimal. Un umbral en cero se trata como 1 para que el ratio
// siempre esté definido.
func CoverageRatio(currentStock, lowStockThreshold int) float64 {
	threshold := lowStockThreshold
	if threshold < 1 {
		threshold = 1
	}
	ratio := float64(currentStock) / float64(threshold) * 100
	return math.Round(ratio*10) / 10
}
