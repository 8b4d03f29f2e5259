package domain

// Field describes one labelled value on the calculator page
type Field struct {
	Name  string
	Label string
	Unit  string
}

// InputFields lists the form fields in display order
var InputFields = []Field{
	{Name: "daily_demand", Label: "Permintaan Harian", Unit: "unit per hari"},
	{Name: "ordering_cost", Label: "Biaya Pemesanan", Unit: "Rp per order"},
	{Name: "holding_cost", Label: "Biaya Penyimpanan", Unit: "Rp per unit per hari"},
	{Name: "lead_time", Label: "Lead Time", Unit: "hari"},
	{Name: "shelf_life", Label: "Umur Simpan Maksimum", Unit: "hari"},
}

// MetricFields lists the result rows in display order
var MetricFields = []Field{
	{Name: "eoq", Label: "EOQ (Economic Order Quantity)", Unit: "unit"},
	{Name: "rop", Label: "Reorder Point (ROP)", Unit: "unit"},
	{Name: "stock_out_time", Label: "Waktu Habisnya Stok", Unit: "hari"},
	{Name: "order_frequency", Label: "Frekuensi Pemesanan per Bulan", Unit: "kali"},
	{Name: "total_monthly_cost", Label: "Total Biaya Persediaan per Bulan", Unit: "Rp"},
}

// Values returns the request fields in InputFields order
func (r CalculationRequest) Values() []float64 {
	return []float64{r.DailyDemand, r.OrderingCost, r.HoldingCost, r.LeadTime, r.ShelfLife}
}

// Values returns the metrics in MetricFields order
func (m Metrics) Values() []float64 {
	return []float64{m.EOQ, m.ROP, m.StockOutTime, m.OrderFrequency, m.TotalMonthlyCost}
}
