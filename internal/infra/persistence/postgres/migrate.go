package postgres

import (
	"context"
	"time"

	"enginex/internal/domain/policy"
	"enginex/internal/errors"
	"enginex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCategory is a reference category with its initial equipment types.
type SeedCategory struct {
	Name  string
	Slug  string
	Icon  string
	Types []string
}

// DefaultCatalog is the reference data loaded by Seed.
var DefaultCatalog = []SeedCategory{
	{
		Name: "Matériel agricole",
		Slug: "agricole",
		Icon: "tractor",
		Types: []string{
			"Tracteur", "Moissonneuse-batteuse", "Charrue", "Semoir", "Pulvérisateur",
			"Remorque agricole", "Presse à balles", "Motoculteur",
		},
	},
	{
		Name: "Engins BTP",
		Slug: "btp",
		Icon: "construction",
		Types: []string{
			"Pelle hydraulique", "Bulldozer", "Chargeuse", "Niveleuse", "Compacteur",
			"Grue", "Tractopelle", "Camion benne",
		},
	},
}

// Migrate creates or updates every table used by the repositories.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto migrate")
	}

	return nil
}

// Seed inserts the reference catalog. Existing categories and types are left untouched,
// so running it twice is harmless.
func Seed(ctx context.Context, db *gorm.DB, catalog []SeedCategory) error {
	now := time.Now().UTC()

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, seed := range catalog {
			category := model.CategoryModel{
				ID:        uuid.New(),
				Name:      seed.Name,
				Slug:      seed.Slug,
				Icon:      seed.Icon,
				CreatedAt: now,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoNothing: true,
			}).Create(&category).Error; err != nil {
				return errors.Wrapf(err, "failed to seed category %s", seed.Slug)
			}

			// Reload: on conflict the generated ID was not stored.
			if err := tx.Where("slug = ?", seed.Slug).First(&category).Error; err != nil {
				return errors.Wrapf(err, "failed to reload category %s", seed.Slug)
			}

			for _, name := range seed.Types {
				equipmentType := model.EquipmentTypeModel{
					ID:         uuid.New(),
					CategoryID: category.ID,
					Name:       name,
					Slug:       policy.Slugify(name),
					CreatedAt:  now,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "category_id"}, {Name: "slug"}},
					DoNothing: true,
				}).Create(&equipmentType).Error; err != nil {
					return errors.Wrapf(err, "failed to seed equipment type %s", name)
				}
			}
		}

		return nil
	})
}
