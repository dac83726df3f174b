package request

// UpdatePriceRequest carries a new unit price. The price must be present and
// not null; a text value is read like the entry form reads it (leading number,
// otherwise 0) and negatives become 0.
type UpdatePriceRequest struct {
	UnitPrice *Amount `json:"unit_price" binding:"required"`
}

// ResolvePrice is called after binding, which guarantees UnitPrice is set.
func (r UpdatePriceRequest) ResolvePrice() float64 {
	return r.UnitPrice.Float()
}
