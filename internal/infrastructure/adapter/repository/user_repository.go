package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"papertrader/internal/domain/entity"
	errs "papertrader/internal/domain/error"
	coreport "papertrader/internal/domain/port/core"
	"papertrader/internal/domain/port/persistence"
	"papertrader/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
		TradeCount:   userModel.TradeCount,
	}
	user.SetCash(userModel.Cash, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id":   userID,
			"operation": operation,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrUsernameTaken
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by username", result.Error, 0)
	}
	return r.modelToEntity(&userModel), nil
}

// UsernameExists reports whether a user with the given username exists
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// Create creates a new user and assigns its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Cash:         user.Cash(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
		TradeCount:   user.TradeCount,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// ExecuteTrade applies one buy or sell atomically. The user row is locked
// FOR UPDATE for the duration, the cash or holdings precondition is re-checked
// against committed state, then the ledger entry insert and the cash update
// commit together. Concurrent trades for the same user serialize on the lock,
// so two sells racing on a stale holding total cannot both succeed.
func (r *UserRepository) ExecuteTrade(ctx context.Context, cmd persistence.TradeCommand) (*entity.User, *entity.LedgerEntry, error) {
	var (
		user  *entity.User
		entry *entity.LedgerEntry
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.User
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&userModel, cmd.UserID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return errs.ErrUserNotFound
			}
			return result.Error
		}

		cost, err := entity.MulShares(cmd.Shares, cmd.PriceCents)
		if err != nil {
			return err
		}

		sharesDelta := cmd.Shares
		newCash := userModel.Cash

		switch cmd.Side {
		case entity.SideBuy:
			if userModel.Cash < cost {
				return errs.NewInsufficientCashError(
					cmd.UserID,
					cmd.Symbol,
					entity.CentsToString(cost),
					entity.CentsToString(userModel.Cash),
				)
			}
			newCash -= cost
		case entity.SideSell:
			var held int64
			row := tx.Model(&model.LedgerEntry{}).
				Where("user_id = ? AND symbol = ?", cmd.UserID, cmd.Symbol).
				Select("COALESCE(SUM(shares), 0)").
				Scan(&held)
			if row.Error != nil {
				return row.Error
			}
			if held < cmd.Shares {
				return errs.NewInsufficientHoldingsError(cmd.UserID, cmd.Symbol, cmd.Shares, held)
			}
			sharesDelta = -cmd.Shares
			newCash += cost
		default:
			return fmt.Errorf("%w: unknown trade side %q", errs.ErrInternalServer, cmd.Side)
		}

		now := r.timeProvider.Now()
		entryModel := model.LedgerEntry{
			UserID:     cmd.UserID,
			Symbol:     cmd.Symbol,
			Shares:     sharesDelta,
			PriceCents: cmd.PriceCents,
			Side:       string(cmd.Side),
			CreatedAt:  now,
		}
		if err := tx.Create(&entryModel).Error; err != nil {
			return err
		}

		userModel.Cash = newCash
		userModel.TradeCount++
		userModel.UpdatedAt = now

		result = tx.Model(&model.User{}).
			Where("id = ?", userModel.ID).
			Updates(map[string]interface{}{
				"cash":        userModel.Cash,
				"updated_at":  userModel.UpdatedAt,
				"trade_count": userModel.TradeCount,
			})
		if result.Error != nil {
			return result.Error
		}

		user = r.modelToEntity(&userModel)
		entry = &entity.LedgerEntry{
			ID:         entryModel.ID,
			UserID:     entryModel.UserID,
			Symbol:     entryModel.Symbol,
			Shares:     entryModel.Shares,
			PriceCents: entryModel.PriceCents,
			Side:       entity.TradeSide(entryModel.Side),
			CreatedAt:  entryModel.CreatedAt,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) ||
			errors.Is(err, errs.ErrInsufficientCash) ||
			errors.Is(err, errs.ErrInsufficientHoldings) {
			return nil, nil, err
		}
		if r.errorClassifier.IsLockError(err) {
			r.logger.Warn("Trade conflicted with a concurrent operation", map[string]any{
				"user_id": cmd.UserID,
				"symbol":  cmd.Symbol,
				"error":   err.Error(),
			})
			return nil, nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
		}
		r.logger.Error("Database error during trade execution", map[string]any{
			"user_id": cmd.UserID,
			"symbol":  cmd.Symbol,
			"error":   err.Error(),
		})
		return nil, nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Trade committed", map[string]any{
		"user_id":     cmd.UserID,
		"symbol":      cmd.Symbol,
		"side":        string(cmd.Side),
		"shares":      cmd.Shares,
		"price":       entity.CentsToString(cmd.PriceCents),
		"new_cash":    user.FormattedCash(),
		"trade_count": user.TradeCount,
	})

	return user, entry, nil
}
