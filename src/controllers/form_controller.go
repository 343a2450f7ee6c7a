package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"racetrack-licensing-api/src/models"
	"racetrack-licensing-api/src/services/forms"
	"racetrack-licensing-api/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// FormController exposes the form lifecycle over HTTP.
type FormController struct {
	service *forms.Service
}

func NewFormController(service *forms.Service) *FormController {
	return &FormController{service: service}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// CreateForm godoc
// @Summary Create a form
// @Description Creates a new licence application form with default pages
// @Tags forms
// @Accept json
// @Produce json
// @Param form body models.CreateFormRequest true "Form to create"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms [post]
func (fc *FormController) CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "formName is required and must be 1-100 characters")
	}

	ctx, cancel := requestContext()
	defer cancel()

	form, err := fc.service.Create(ctx, req.FormName)
	if err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Form created successfully",
		"form":    form,
	})
}

// GetAllForms godoc
// @Summary List forms
// @Description Lists forms ordered by most recently updated, optionally filtered by status
// @Tags forms
// @Produce json
// @Param status query string false "Filter by status" Enums(in-progress, submitted)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms [get]
func (fc *FormController) GetAllForms(c *fiber.Ctx) error {
	var query models.ListFormsQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid query parameters")
	}
	if err := validate.Struct(&query); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "status must be in-progress or submitted")
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := fc.service.FindAll(ctx, query.Status)
	if err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"forms": result})
}

// GetFormByID godoc
// @Summary Get a form
// @Description Fetches one form by its identifier
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} models.Form
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms/{id} [get]
func (fc *FormController) GetFormByID(c *fiber.Ctx) error {
	ctx, cancel := requestContext()
	defer cancel()

	form, err := fc.service.FindByID(ctx, c.Params("id"))
	if err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(form)
}

// UpdateForm godoc
// @Summary Update a form
// @Description Renames the form or patches leaf fields of one page; exactly one of the two shapes per request
// @Tags forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param update body models.UpdateFormRequest true "Update payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms/{id} [put]
func (fc *FormController) UpdateForm(c *fiber.Ctx) error {
	var req models.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid request payload")
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid update payload")
	}

	ctx, cancel := requestContext()
	defer cancel()

	form, err := fc.service.Update(ctx, c.Params("id"), &req)
	if err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Form updated successfully",
		"form":    form,
	})
}

// SubmitForm godoc
// @Summary Submit a form
// @Description Transitions an in-progress form to submitted after checking required applicant details
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms/{id}/submit [post]
func (fc *FormController) SubmitForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext()
	defer cancel()

	form, err := fc.service.Submit(ctx, c.Params("id"))
	if err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Form submitted successfully",
		"form":    form,
	})
}

// DeleteForm godoc
// @Summary Delete a form
// @Description Deletes an in-progress form; submitted forms cannot be deleted
// @Tags forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /forms/{id} [delete]
func (fc *FormController) DeleteForm(c *fiber.Ctx) error {
	ctx, cancel := requestContext()
	defer cancel()

	if err := fc.service.Delete(ctx, c.Params("id")); err != nil {
		return fc.respondError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Form deleted successfully",
	})
}

// respondError maps service error kinds onto HTTP statuses. Storage errors
// pass through as 500 without being retried or reworded here.
func (fc *FormController) respondError(c *fiber.Ctx, err error) error {
	var validationErr *forms.ValidationError

	switch {
	case errors.Is(err, forms.ErrFormNotFound):
		return utils.HandleError(c, http.StatusNotFound, "Form not found")
	case errors.Is(err, forms.ErrAlreadySubmitted):
		return utils.HandleError(c, http.StatusConflict, "Form is already submitted")
	case errors.As(err, &validationErr):
		return utils.HandleError(c, http.StatusBadRequest, validationErr.Error())
	default:
		return utils.HandleError(c, http.StatusInternalServerError, "Internal server error")
	}
}
