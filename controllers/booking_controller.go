package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hoteldesk-backend/services"
	"hoteldesk-backend/utils"
)

const dateLayout = "2006-01-02"

type BookingController struct {
	Bookings *services.BookingService
	Invoices *services.InvoiceService
}

func NewBookingController(bookings *services.BookingService, invoices *services.InvoiceService) *BookingController {
	return &BookingController{Bookings: bookings, Invoices: invoices}
}

type createBookingPayload struct {
	ClientID uint   `json:"client_id" binding:"required"`
	RoomID   uint   `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := time.Parse(dateLayout, payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in must be a YYYY-MM-DD date")
		return
	}
	checkOut, err := time.Parse(dateLayout, payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be a YYYY-MM-DD date")
		return
	}

	booking, err := ctrl.Bookings.Create(payload.ClientID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.Bookings.GetAllWithRelations()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	booking, err := ctrl.Bookings.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CheckoutBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.Bookings.Checkout(id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"checked_out": true})
}

// DownloadInvoice streams the booking's invoice PDF as an attachment.
func (ctrl *BookingController) DownloadInvoice(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	pdf, err := ctrl.Invoices.Render(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="invoice_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}
