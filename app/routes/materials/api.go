package materials

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-management-system/app/database"
	"school-management-system/app/models"
	"school-management-system/app/routes/apiutil"
	"school-management-system/app/validation"
)

func ListMaterialsAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		materials, err := database.GetMaterials(db, c.Query("class_id"), c.Query("type"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(materials)
	}
}

func GetMaterialAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		material, err := database.GetMaterialByID(db, c.Params("id"))
		if err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(material)
	}
}

// CreateMaterialAPI uploads a resource and links it to classes. Unknown class
// ids in the list are skipped rather than failing the whole upload.
func CreateMaterialAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type MaterialRequest struct {
			Title        string   `json:"title" validate:"required"`
			Description  string   `json:"description"`
			MaterialType string   `json:"material_type" validate:"required"`
			FilePath     *string  `json:"file_path"`
			ExternalURL  *string  `json:"external_url"`
			TeacherID    string   `json:"teacher_id" validate:"required,uuid"`
			ClassIDs     []string `json:"class_ids"`
		}

		var req MaterialRequest
		if err := c.BodyParser(&req); err != nil {
			return apiutil.BadRequest(c, "Invalid request")
		}
		if err := validation.Struct(&req); err != nil {
			return apiutil.BadRequest(c, err.Error())
		}

		material := &models.LearningMaterial{
			Title:        req.Title,
			Description:  req.Description,
			MaterialType: req.MaterialType,
			FilePath:     req.FilePath,
			ExternalURL:  req.ExternalURL,
			TeacherID:    req.TeacherID,
		}
		if err := database.CreateMaterial(db, material, req.ClassIDs); err != nil {
			return apiutil.Error(c, err)
		}
		return c.Status(201).JSON(material)
	}
}

func DeleteMaterialAPI(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DeleteMaterial(db, c.Params("id")); err != nil {
			return apiutil.Error(c, err)
		}
		return c.JSON(fiber.Map{"message": "Material deleted"})
	}
}
