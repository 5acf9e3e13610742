package utils

type Metric struct {
	StoreSave   chan float64
	StoreLoad   chan float64
	HTTPRequest chan float64
}

func NewMetric() *Metric {
	return &Metric{
		StoreSave:   make(chan float64),
		StoreLoad:   make(chan float64),
		HTTPRequest: make(chan float64),
	}
}
