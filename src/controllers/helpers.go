package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bind ถอด JSON body แล้ว validate; ok=false แปลว่าตอบ 400 กลับไปแล้ว
// ใช้ json.Unmarshal ตรง ๆ เพราะ navigator.sendBeacon ส่งมาเป็น text/plain
func bind(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return false, utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if errs := utils.ValidateStruct(dst); errs != nil {
		return false, utils.HandleValidationError(c, errs)
	}
	return true, nil
}

func paramObjectID(c *fiber.Ctx, name string) (primitive.ObjectID, bool, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, false, utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	return id, true, nil
}

func paginationFromQuery(c *fiber.Ctx) models.PaginationParams {
	p := models.DefaultPagination()
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = v
	}
	if o := c.Query("order"); o != "" {
		p.Order = o
	}
	p.Normalize()
	return p
}

// respondError ถ้าเป็น validation error ราย field ส่ง map กลับด้วย
func respondError(c *fiber.Ctx, err error) error {
	var fe interface{ FieldErrors() map[string]string }
	if errors.As(err, &fe) {
		return utils.HandleValidationError(c, fe.FieldErrors())
	}
	return utils.HandleServiceError(c, err)
}
