package cmd

type Config struct {
	HTTPPort                   string
	PaymentFailureProbability  float64
	ShipmentFailureProbability float64
}
