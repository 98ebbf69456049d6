package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/andrewdphillips61/Vita-AI/config"
	"github.com/andrewdphillips61/Vita-AI/models"
	"github.com/andrewdphillips61/Vita-AI/utils"

	"gorm.io/gorm"
)

// ProfileState tracks the lifecycle of a profile resolution. The loaded
// profile used to live in process-wide mutable state on the client; here
// it is an explicit value handed to each call site.
type ProfileState int

const (
	ProfileUnloaded ProfileState = iota
	ProfileLoading
	ProfileLoaded
	ProfileError
)

func (s ProfileState) String() string {
	switch s {
	case ProfileLoading:
		return "loading"
	case ProfileLoaded:
		return "loaded"
	case ProfileError:
		return "error"
	default:
		return "unloaded"
	}
}

// ProfileContext carries the resolved user through a request. Exactly one
// of User/Err is meaningful once State leaves ProfileLoading.
type ProfileContext struct {
	State ProfileState
	User  *models.User
	Err   error
}

var ErrProfileNotFound = errors.New("profile not found")

// ProfileResolver maps external identity-provider subjects to internal
// users. The mapping is performed once and cached; everything below the
// auth boundary works with the internal id.
type ProfileResolver struct {
	mu    sync.RWMutex
	cache map[string]uint // external id → internal user id
}

func NewProfileResolver() *ProfileResolver {
	return &ProfileResolver{cache: make(map[string]uint)}
}

// Resolve walks the lifecycle unloaded → loading → loaded|error and
// returns the terminal context.
func (r *ProfileResolver) Resolve(externalID string) ProfileContext {
	ctx := ProfileContext{State: ProfileLoading}

	r.mu.RLock()
	id, hit := r.cache[externalID]
	r.mu.RUnlock()

	var user models.User
	var err error
	if hit {
		err = config.DB.First(&user, id).Error
	} else {
		err = config.DB.Where("external_id = ? AND disabled = ?", externalID, false).First(&user).Error
	}
	if err != nil {
		ctx.State = ProfileError
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.Err = ErrProfileNotFound
		} else {
			ctx.Err = err
		}
		return ctx
	}

	if !hit {
		r.mu.Lock()
		r.cache[externalID] = user.ID
		r.mu.Unlock()
	}

	ctx.State = ProfileLoaded
	ctx.User = &user
	return ctx
}

// EnsureProfile creates the profile row for a first sign-in. Best-effort
// by contract: a failure never blocks the caller, but it is logged so the
// inconsistency stays visible.
func (r *ProfileResolver) EnsureProfile(externalID, email, fullName string) {
	ctx := r.Resolve(externalID)
	if ctx.State == ProfileLoaded {
		return
	}
	if !errors.Is(ctx.Err, ErrProfileNotFound) {
		log.Printf("profile lookup for %s failed: %v", externalID, ctx.Err)
		return
	}

	user := models.User{
		ExternalID: externalID,
		Email:      email,
		Password:   "-", // externally authenticated; no local credential
		FullName:   fullName,
		Verified:   true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		// No user row exists yet, so there is nobody to alert; the log
		// line is the only useful signal.
		log.Printf("best-effort profile creation for %s failed: %v", email, err)
		return
	}

	r.mu.Lock()
	r.cache[externalID] = user.ID
	r.mu.Unlock()
}

type ProfileInput struct {
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}
