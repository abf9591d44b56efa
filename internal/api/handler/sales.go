package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/influencer-sales-api/internal/domain"
	"github.com/vfg2006/influencer-sales-api/internal/usecases/sales"
)

// SaleRequest aceita os nomes históricos dos campos de pedido, valor bruto e desconto
type SaleRequest struct {
	OrderNumber      any    `json:"orderNumber"`
	OrderCode        any    `json:"orderCode"`
	OrderNumberSnake any    `json:"order_number"`
	Coupon           string `json:"cupom"`
	Date             string `json:"date"`
	GrossValue       any    `json:"grossValue"`
	GrossValueSnake  any    `json:"gross_value"`
	Discount         any    `json:"discount"`
	DiscountValue    any    `json:"discountValue"`
}

func (req SaleRequest) toInput() domain.SaleInput {
	return domain.SaleInput{
		OrderNumber: textValue(firstPresent(req.OrderNumber, req.OrderCode, req.OrderNumberSnake)),
		Coupon:      req.Coupon,
		Date:        req.Date,
		GrossValue:  firstPresent(req.GrossValue, req.GrossValueSnake),
		Discount:    firstPresent(req.Discount, req.DiscountValue),
	}
}

type CheckOrdersRequest struct {
	Orders []any `json:"orders"`
}

type checkedOrder struct {
	SaleID      int64  `json:"sale_id"`
	OrderNumber string `json:"order_code"`
	Date        string `json:"date"`
	Coupon      string `json:"cupom"`
}

func CreateSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.CreateSale(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	}
}

func UpdateSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req SaleRequest
		if !decodeBody(w, r, &req) {
			return
		}

		sale, err := service.UpdateSale(r.Context(), id, req.toInput())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	}
}

func DeleteSale(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteSale(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: "Venda removida com sucesso."})
	}
}

// CheckOrders informa quais pedidos da lista já estão cadastrados
func CheckOrders(service sales.SalesService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckOrdersRequest
		if !decodeBody(w, r, &req) {
			return
		}

		orders := make([]string, 0, len(req.Orders))
		for _, order := range req.Orders {
			orders = append(orders, textValue(order))
		}

		found, err := service.CheckOrders(r.Context(), orders)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		response := make([]checkedOrder, 0, len(found))
		for _, sale := range found {
			response = append(response, checkedOrder{
				SaleID:      sale.ID,
				OrderNumber: sale.OrderNumber,
				Date:        sale.Date,
				Coupon:      sale.Coupon,
			})
		}

		writeJSON(w, r, http.StatusOK, response)
	}
}

func firstPresent(values ...any) any {
	for _, value := range values {
		if value != nil {
			return value
		}
	}
	return nil
}

// textValue converte números vindos do JSON sem notação científica
func textValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
