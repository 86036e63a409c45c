package http

import (
	"fmt"
	"net/http"
	"strconv"

	"olms-backend/internal/logger"
	"olms-backend/internal/receipt"
	"olms-backend/internal/service"
)

type BillHandler struct {
	receipts service.ReceiptService
}

func NewBillHandler(receipts service.ReceiptService) *BillHandler {
	return &BillHandler{receipts: receipts}
}

// Generate serves GET /api/bills?paymentId=&loanId=&type= as a PDF download.
func (h *BillHandler) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.ReceiptRequest{
		PaymentID: q.Get("paymentId"),
		LoanID:    q.Get("loanId"),
		Copy:      receipt.Copy(q.Get("type")),
	}

	rcpt, err := h.receipts.GenerateReceipt(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to generate bill")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rcpt.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(rcpt.PDF)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(rcpt.PDF); err != nil {
		logger.WarnContext(r.Context(), "Failed to write bill", "error", err)
	}
}
