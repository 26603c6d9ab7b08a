package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/usecase"
	"smart-clinic-gateway/pkg/response"
	"smart-clinic-gateway/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// SelectDoctor loads the schedules of the doctor shown on the booking page.
func (h *BookingHandler) SelectDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedules, err := h.bookingUsecase.SelectDoctor(r.Context(), sessionFrom(r), req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaleLoad):
			response.Conflict(w, "Another doctor was selected meanwhile")
		case errors.Is(err, usecase.ErrScheduleUnavailable):
			response.Error(w, http.StatusBadGateway, "Failed to load doctor schedules", nil)
		default:
			h.writeError(w, err, "Failed to load doctor schedules")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedules loaded successfully", schedules)
}

func (h *BookingHandler) ResolveSlot(w http.ResponseWriter, r *http.Request) {
	slot, err := h.bookingUsecase.ResolveSlot(r.Context(), sessionFrom(r), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to resolve slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot resolved successfully", slot)
}

func (h *BookingHandler) IsDateBookable(w http.ResponseWriter, r *http.Request) {
	bookable, err := h.bookingUsecase.IsDateBookable(r.Context(), sessionFrom(r), r.URL.Query().Get("date"))
	if err != nil {
		h.writeError(w, err, "Failed to check date")
		return
	}

	response.Success(w, http.StatusOK, "Date checked successfully", bookable)
}

func (h *BookingHandler) BookableDates(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid days parameter", nil)
			return
		}
		days = parsed
	}

	dates, err := h.bookingUsecase.BookableDates(r.Context(), sessionFrom(r), r.URL.Query().Get("from"), days)
	if err != nil {
		h.writeError(w, err, "Failed to list bookable dates")
		return
	}

	response.Success(w, http.StatusOK, "Bookable dates retrieved successfully", dates)
}

func (h *BookingHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.SubmitBooking(r.Context(), sessionFrom(r), &req)
	if err != nil {
		h.writeError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully!", appointment)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrReasonTooShort):
		response.ValidationError(w, map[string]string{"reason": err.Error()})
	case errors.Is(err, usecase.ErrInvalidDateFormat):
		response.ValidationError(w, map[string]string{"date": usecase.ErrInvalidDateFormat.Error()})
	case errors.Is(err, usecase.ErrInvalidDoctorID):
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
	case errors.Is(err, usecase.ErrUnauthenticated):
		response.Unauthorized(w, "Please login to book an appointment")
	case errors.Is(err, usecase.ErrWrongRole):
		response.Forbidden(w, "Only patients can book appointments")
	case errors.Is(err, usecase.ErrNoScheduleLoaded):
		response.Conflict(w, "Select a doctor first")
	case errors.Is(err, usecase.ErrNoAvailableSlot):
		response.UnprocessableEntity(w, "No available schedule for the selected date")
	default:
		writeBackendError(w, err, fallback)
	}
}
