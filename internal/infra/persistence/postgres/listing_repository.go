package postgres

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"enginex/internal/domain/entity"
	domainerrors "enginex/internal/domain/errors"
	"enginex/internal/domain/repository"
	"enginex/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	listingM, err := fromListingDomain(listing)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown category, equipment type or owner")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return toListingDomain(&listingM)
}

func (repo *listingRepository) SearchVisible(ctx context.Context, filter repository.ListingFilter, now time.Time, page repository.Page) ([]*entity.Listing, int64, error) {
	query := applyListingFilter(visibleListings(repo.db.WithContext(ctx), now), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count visible listings")
	}
	if total == 0 {
		return []*entity.Listing{}, 0, nil
	}

	var listingModels []*model.ListingModel
	if err := inRankingOrder(query).
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&listingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search visible listings")
	}

	listings, err := toListingDomains(listingModels)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

// visibleListings restricts to approved, active, unexpired listings.
func visibleListings(db *gorm.DB, now time.Time) *gorm.DB {
	return db.Model(&model.ListingModel{}).
		Where("status = ? AND is_active = ?", string(entity.ListingStatusApproved), true).
		Where("expires_at IS NULL OR expires_at > ?", now)
}

// inRankingOrder sorts by priority score, then newest first. id breaks exact ties so pages are stable.
func inRankingOrder(query *gorm.DB) *gorm.DB {
	return query.
		Order("priority_score DESC").
		Order("created_at DESC").
		Order("id DESC")
}

func applyListingFilter(query *gorm.DB, filter repository.ListingFilter) *gorm.DB {
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.EquipmentTypeID != nil {
		query = query.Where("equipment_type_id = ?", *filter.EquipmentTypeID)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", string(filter.Region))
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", string(filter.Condition))
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		query = query.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		query = query.Where("year <= ?", *filter.MaxYear)
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := "%" + escapeLike(keyword) + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR brand ILIKE ? OR model ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (repo *listingRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owner listings")
	}

	return toListingDomains(listingModels)
}

func (repo *listingRepository) FindByImage(ctx context.Context, imageURL string) ([]*entity.Listing, error) {
	query, err := listingsWithImage(repo.db.WithContext(ctx), imageURL)
	if err != nil {
		return nil, err
	}

	var listingModels []*model.ListingModel
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by image")
	}

	return toListingDomains(listingModels)
}

// listingsWithImage matches the jsonb images array by containment, which the GIN index serves.
func listingsWithImage(db *gorm.DB, imageURL string) (*gorm.DB, error) {
	needle, err := json.Marshal([]string{imageURL})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode image filter")
	}

	return db.Model(&model.ListingModel{}).Where("images @> ?::jsonb", string(needle)), nil
}

func (repo *listingRepository) ListAll(ctx context.Context, filter repository.AdminListingFilter, page repository.Page) ([]*entity.Listing, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ListingModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count listings")
	}

	var listingModels []*model.ListingModel
	if err := query.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&listingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	listings, err := toListingDomains(listingModels)
	if err != nil {
		return nil, 0, err
	}

	return listings, total, nil
}

func (repo *listingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus, at time.Time) error {
	return repo.updateColumns(ctx, id, at, map[string]any{"status": string(status)})
}

func (repo *listingRepository) UpdateBadge(ctx context.Context, id uuid.UUID, badge entity.Badge, priorityScore int, at time.Time) error {
	return repo.updateColumns(ctx, id, at, map[string]any{
		"badge":          string(badge),
		"priority_score": priorityScore,
	})
}

func (repo *listingRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	return repo.updateColumns(ctx, id, at, map[string]any{"is_active": active})
}

func (repo *listingRepository) MarkExpiryWarned(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, id, at, map[string]any{"expiry_warned_at": at})
}

// updateColumns writes the given columns and sets updated_at to at. Same-value writes still touch the row.
func (repo *listingRepository) updateColumns(ctx context.Context, id uuid.UUID, at time.Time, columns map[string]any) error {
	result := listingUpdate(repo.db.WithContext(ctx), id, at, columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func listingUpdate(db *gorm.DB, id uuid.UUID, at time.Time, columns map[string]any) *gorm.DB {
	columns["updated_at"] = at

	return db.Model(&model.ListingModel{}).Where("id = ?", id).Updates(columns)
}

func (repo *listingRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ListingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// AcquireQuotaLock takes transaction-scoped advisory locks keyed on the contact identity.
// Keys are locked in sorted order so two submissions sharing both keys cannot deadlock.
func (repo *listingRepository) AcquireQuotaLock(ctx context.Context, contactPhone, contactEmail string) error {
	keys := []string{"quota:phone:" + contactPhone}
	if contactEmail != "" {
		keys = append(keys, "quota:email:"+contactEmail)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := repo.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to acquire quota lock")
		}
	}

	return nil
}

// CountRecentByContact includes soft-deleted rows: removing a listing does not give the slot back.
func (repo *listingRepository) CountRecentByContact(ctx context.Context, contactPhone, contactEmail string, since time.Time) (int64, error) {
	query := repo.db.WithContext(ctx).
		Unscoped().
		Model(&model.ListingModel{}).
		Where("created_at >= ?", since).
		Where("plan = ?", string(entity.AccountTypeIndividual))
	if contactEmail != "" {
		query = query.Where("contact_phone = ? OR contact_email = ?", contactPhone, contactEmail)
	} else {
		query = query.Where("contact_phone = ?", contactPhone)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent listings")
	}

	return count, nil
}

func (repo *listingRepository) RecordView(ctx context.Context, view *entity.ListingView) error {
	if view.ID == uuid.Nil {
		view.ID = uuid.New()
	}

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ListingModel{}).
			Where("id = ?", view.ListingID).
			UpdateColumn("views_count", gorm.Expr("views_count + ?", 1))
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to increment view counter")
		}
		if result.RowsAffected == 0 {
			return repository.ErrListingNotFound
		}

		viewM := &model.ListingViewModel{
			ID:        view.ID,
			ListingID: view.ListingID,
			IPAddress: view.IPAddress,
			ViewedAt:  view.ViewedAt,
		}
		if err := tx.Create(viewM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to record listing view")
		}

		return nil
	})
}

type listingStatsRow struct {
	Total      int64
	Approved   int64
	Pending    int64
	Rejected   int64
	TotalViews int64
}

func (repo *listingRepository) Stats(ctx context.Context, userID *uuid.UUID) (*entity.ListingStats, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS approved,
			COUNT(*) FILTER (WHERE status = ?) AS pending,
			COUNT(*) FILTER (WHERE status = ?) AS rejected,
			COALESCE(SUM(views_count), 0) AS total_views`,
			entity.ListingStatusApproved, entity.ListingStatusPending, entity.ListingStatusRejected)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var row listingStatsRow
	if err := query.Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listing stats")
	}

	return &entity.ListingStats{
		Total:      row.Total,
		Approved:   row.Approved,
		Pending:    row.Pending,
		Rejected:   row.Rejected,
		TotalViews: row.TotalViews,
	}, nil
}

func (repo *listingRepository) FindExpired(ctx context.Context, now time.Time, limit int) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired listings")
	}

	return toListingDomains(listingModels)
}

func (repo *listingRepository) FindExpiringUnwarned(ctx context.Context, now, until time.Time, limit int) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("status = ? AND is_active = ?", entity.ListingStatusApproved, true).
		Where("expires_at > ? AND expires_at <= ?", now, until).
		Where("expiry_warned_at IS NULL").
		Order("expires_at ASC").
		Limit(limit).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expiring listings")
	}

	return toListingDomains(listingModels)
}

// --- Mapper Functions ---

func toListingDomains(listingModels []*model.ListingModel) ([]*entity.Listing, error) {
	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, m := range listingModels {
		listing, err := toListingDomain(m)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}

	return listings, nil
}

func toListingDomain(data *model.ListingModel) (*entity.Listing, error) {
	images := []string{}
	if len(data.Images) > 0 {
		if err := json.Unmarshal(data.Images, &images); err != nil {
			return nil, errors.Wrapf(err, "failed to decode images of listing %s", data.ID)
		}
	}

	return &entity.Listing{
		ID:              data.ID,
		UserID:          data.UserID,
		CategoryID:      data.CategoryID,
		EquipmentTypeID: data.EquipmentTypeID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		Year:            data.Year,
		Region:          entity.Region(data.Region),
		City:            data.City,
		Brand:           data.Brand,
		Model:           data.Model,
		Condition:       entity.Condition(data.Condition),
		Images:          images,
		Status:          entity.ListingStatus(data.Status),
		IsActive:        data.IsActive,
		PriorityScore:   data.PriorityScore,
		Badge:           entity.Badge(data.Badge),
		Plan:            entity.AccountType(data.Plan),
		ViewsCount:      data.ViewsCount,
		ExpiresAt:       data.ExpiresAt,
		ExpiryWarnedAt:  data.ExpiryWarnedAt,
		ContactPhone:    data.ContactPhone,
		ContactEmail:    data.ContactEmail,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

func fromListingDomain(data *entity.Listing) (*model.ListingModel, error) {
	images := data.Images
	if images == nil {
		images = []string{}
	}
	encoded, err := json.Marshal(images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode listing images")
	}

	return &model.ListingModel{
		ID:              data.ID,
		UserID:          data.UserID,
		CategoryID:      data.CategoryID,
		EquipmentTypeID: data.EquipmentTypeID,
		Title:           data.Title,
		Description:     data.Description,
		Price:           data.Price,
		Year:            data.Year,
		Region:          string(data.Region),
		City:            data.City,
		Brand:           data.Brand,
		Model:           data.Model,
		Condition:       string(data.Condition),
		Images:          datatypes.JSON(encoded),
		Status:          string(data.Status),
		IsActive:        data.IsActive,
		PriorityScore:   data.PriorityScore,
		Badge:           string(data.Badge),
		Plan:            string(data.Plan),
		ViewsCount:      data.ViewsCount,
		ExpiresAt:       data.ExpiresAt,
		ExpiryWarnedAt:  data.ExpiryWarnedAt,
		ContactPhone:    data.ContactPhone,
		ContactEmail:    data.ContactEmail,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}
