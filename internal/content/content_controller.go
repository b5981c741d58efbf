package content

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Hariharan358/rec-spo/pkg/responses"
	"github.com/Hariharan358/rec-spo/pkg/validator"
)

// ContentController handles the admin management surface over the club
// content store.
type ContentController struct {
	store *Store
}

func NewContentController(store *Store) *ContentController {
	return &ContentController{store: store}
}

// --- DTOs (Data Transfer Objects) for requests ---

type CreateAchievementRequest struct {
	IconName string `json:"iconName" binding:"required,oneof=Trophy Medal Award"`
	Title    string `json:"title" binding:"required,max=100"`
	Count    string `json:"count" binding:"required,max=20"`
	Subtitle string `json:"subtitle" binding:"omitempty,max=100"`
}

type UpdateAchievementRequest struct {
	IconName *string `json:"iconName" binding:"omitempty,oneof=Trophy Medal Award"`
	Title    *string `json:"title" binding:"omitempty,max=100"`
	Count    *string `json:"count" binding:"omitempty,max=20"`
	Subtitle *string `json:"subtitle" binding:"omitempty,max=100"`
}

type CreateGalleryImageRequest struct {
	Src string `json:"src" binding:"required"`
	Alt string `json:"alt" binding:"omitempty,max=200"`
}

type UpdateGalleryImageRequest struct {
	Src *string `json:"src" binding:"omitempty"`
	Alt *string `json:"alt" binding:"omitempty,max=200"`
}

type CreateSportRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Image    string  `json:"image" binding:"omitempty,max=255"`
	Schedule string  `json:"schedule" binding:"omitempty,max=100"`
	Venue    string  `json:"venue" binding:"omitempty,max=100"`
	Captain  string  `json:"captain" binding:"omitempty,max=100"`
	Coach    string  `json:"coach" binding:"omitempty,max=100"`
	Rating   float64 `json:"rating" binding:"min=0,max=5"`
	Members  int     `json:"members" binding:"min=0"`
	Featured bool    `json:"featured"`
}

type UpdateSportRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Image    *string  `json:"image" binding:"omitempty,max=255"`
	Schedule *string  `json:"schedule" binding:"omitempty,max=100"`
	Venue    *string  `json:"venue" binding:"omitempty,max=100"`
	Captain  *string  `json:"captain" binding:"omitempty,max=100"`
	Coach    *string  `json:"coach" binding:"omitempty,max=100"`
	Rating   *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Members  *int     `json:"members" binding:"omitempty,min=0"`
	Featured *bool    `json:"featured"`
}

type CreateEventRequest struct {
	Title  string `json:"title" binding:"required,max=150"`
	Date   string `json:"date" binding:"required,max=50"`
	Time   string `json:"time" binding:"omitempty,max=50"`
	Venue  string `json:"venue" binding:"omitempty,max=100"`
	Type   string `json:"type" binding:"omitempty,max=50"`
	Status string `json:"status" binding:"required,oneof='Registration Open' 'Coming Soon' 'Closed'"`
}

type UpdateEventRequest struct {
	Title  *string `json:"title" binding:"omitempty,max=150"`
	Date   *string `json:"date" binding:"omitempty,max=50"`
	Time   *string `json:"time" binding:"omitempty,max=50"`
	Venue  *string `json:"venue" binding:"omitempty,max=100"`
	Type   *string `json:"type" binding:"omitempty,max=50"`
	Status *string `json:"status" binding:"omitempty,oneof='Registration Open' 'Coming Soon' 'Closed'"`
}

type CreateTeamMemberRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Role        string `json:"role" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=200"`
	Image       string `json:"image" binding:"omitempty,max=255"`
}

type UpdateTeamMemberRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Role        *string `json:"role" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=200"`
	Image       *string `json:"image" binding:"omitempty,max=255"`
}

type CreateRegistrationRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	RegisterNumber string `json:"registerNumber" binding:"required,max=30"`
	Department     string `json:"department" binding:"required,max=100"`
	Year           string `json:"year" binding:"required,max=20"`
	Sport          string `json:"sport" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,max=20"`
}

// memberImageValid accepts an image URL (or data URL / asset path) or an
// initials string of at most 3 characters.
func memberImageValid(image string) bool {
	if image == "" {
		return true
	}
	if strings.Contains(image, "://") || strings.HasPrefix(image, "data:") || strings.HasPrefix(image, "/") {
		return true
	}
	return utf8.RuneCountInString(image) <= 3
}

func bindError(c *gin.Context, err error) {
	responses.Error(c, http.StatusBadRequest, "Validation failed", errors.New(validator.FlattenError(err)))
}

// --- Achievement handlers ---

// ListAchievements godoc
// @Summary List achievements
// @Tags Content
// @Produce json
// @Success 200 {array} Achievement
// @Router /content/achievements [get]
func (cc *ContentController) ListAchievements(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Achievements.List())
}

// CreateAchievement godoc
// @Summary Create an achievement
// @Tags Content
// @Accept json
// @Produce json
// @Param achievement body CreateAchievementRequest true "Achievement"
// @Success 201 {object} Achievement
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/achievements [post]
func (cc *ContentController) CreateAchievement(c *gin.Context) {
	var req CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := cc.store.Achievements.Add(Achievement{
		IconName: req.IconName,
		Title:    req.Title,
		Count:    req.Count,
		Subtitle: req.Subtitle,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to save achievement", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAchievement godoc
// @Summary Update an achievement
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Achievement ID"
// @Param achievement body UpdateAchievementRequest true "Fields to update"
// @Success 200 {object} Achievement
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/achievements/{id} [put]
func (cc *ContentController) UpdateAchievement(c *gin.Context) {
	var req UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := cc.store.Achievements.Update(c.Param("id"), func(a Achievement) Achievement {
		if req.IconName != nil {
			a.IconName = *req.IconName
		}
		if req.Title != nil {
			a.Title = *req.Title
		}
		if req.Count != nil {
			a.Count = *req.Count
		}
		if req.Subtitle != nil {
			a.Subtitle = *req.Subtitle
		}
		return a
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Achievement")
			return
		}
		responses.InternalServerError(c, "Failed to update achievement", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAchievement godoc
// @Summary Delete an achievement
// @Tags Content
// @Param id path string true "Achievement ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/achievements/{id} [delete]
func (cc *ContentController) DeleteAchievement(c *gin.Context) {
	if err := cc.store.Achievements.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Achievement")
			return
		}
		responses.InternalServerError(c, "Failed to delete achievement", err)
		return
	}
	responses.Message(c, http.StatusOK, "Achievement deleted successfully")
}

// --- Gallery handlers ---

// ListGalleryImages godoc
// @Summary List gallery images
// @Tags Content
// @Produce json
// @Success 200 {array} GalleryImage
// @Router /content/gallery [get]
func (cc *ContentController) ListGalleryImages(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.GalleryImages.List())
}

// CreateGalleryImage godoc
// @Summary Add a gallery image
// @Tags Content
// @Accept json
// @Produce json
// @Param image body CreateGalleryImageRequest true "Gallery image"
// @Success 201 {object} GalleryImage
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/gallery [post]
func (cc *ContentController) CreateGalleryImage(c *gin.Context) {
	var req CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := cc.store.GalleryImages.Add(GalleryImage{Src: req.Src, Alt: req.Alt})
	if err != nil {
		responses.InternalServerError(c, "Failed to save gallery image", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateGalleryImage godoc
// @Summary Update a gallery image
// @Tags Content
// @Param id path string true "Gallery image ID"
// @Success 200 {object} GalleryImage
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/gallery/{id} [put]
func (cc *ContentController) UpdateGalleryImage(c *gin.Context) {
	var req UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := cc.store.GalleryImages.Update(c.Param("id"), func(g GalleryImage) GalleryImage {
		if req.Src != nil {
			g.Src = *req.Src
		}
		if req.Alt != nil {
			g.Alt = *req.Alt
		}
		return g
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Gallery image")
			return
		}
		responses.InternalServerError(c, "Failed to update gallery image", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGalleryImage godoc
// @Summary Delete a gallery image
// @Tags Content
// @Param id path string true "Gallery image ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/gallery/{id} [delete]
func (cc *ContentController) DeleteGalleryImage(c *gin.Context) {
	if err := cc.store.GalleryImages.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Gallery image")
			return
		}
		responses.InternalServerError(c, "Failed to delete gallery image", err)
		return
	}
	responses.Message(c, http.StatusOK, "Gallery image deleted successfully")
}

// --- Sport handlers ---

// ListSports godoc
// @Summary List sports programs
// @Tags Content
// @Produce json
// @Success 200 {array} Sport
// @Router /content/sports [get]
func (cc *ContentController) ListSports(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Sports.List())
}

// CreateSport godoc
// @Summary Create a sports program
// @Tags Content
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport"
// @Success 201 {object} Sport
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/sports [post]
func (cc *ContentController) CreateSport(c *gin.Context) {
	var req CreateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := cc.store.Sports.Add(Sport{
		Name:     req.Name,
		Image:    req.Image,
		Schedule: req.Schedule,
		Venue:    req.Venue,
		Captain:  req.Captain,
		Coach:    req.Coach,
		Rating:   req.Rating,
		Members:  req.Members,
		Featured: req.Featured,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to save sport", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSport godoc
// @Summary Update a sports program
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Sport ID"
// @Param sport body UpdateSportRequest true "Fields to update"
// @Success 200 {object} Sport
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/sports/{id} [put]
func (cc *ContentController) UpdateSport(c *gin.Context) {
	var req UpdateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := cc.store.Sports.Update(c.Param("id"), func(s Sport) Sport {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.Image != nil {
			s.Image = *req.Image
		}
		if req.Schedule != nil {
			s.Schedule = *req.Schedule
		}
		if req.Venue != nil {
			s.Venue = *req.Venue
		}
		if req.Captain != nil {
			s.Captain = *req.Captain
		}
		if req.Coach != nil {
			s.Coach = *req.Coach
		}
		if req.Rating != nil {
			s.Rating = *req.Rating
		}
		if req.Members != nil {
			s.Members = *req.Members
		}
		if req.Featured != nil {
			s.Featured = *req.Featured
		}
		return s
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Sport")
			return
		}
		responses.InternalServerError(c, "Failed to update sport", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSport godoc
// @Summary Delete a sports program
// @Tags Content
// @Param id path string true "Sport ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/sports/{id} [delete]
func (cc *ContentController) DeleteSport(c *gin.Context) {
	if err := cc.store.Sports.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Sport")
			return
		}
		responses.InternalServerError(c, "Failed to delete sport", err)
		return
	}
	responses.Message(c, http.StatusOK, "Sport deleted successfully")
}

// --- Event handlers ---

// ListEvents godoc
// @Summary List events
// @Tags Content
// @Produce json
// @Success 200 {array} Event
// @Router /content/events [get]
func (cc *ContentController) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Events.List())
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Content
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} Event
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/events [post]
func (cc *ContentController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := cc.store.Events.Add(Event{
		Title:  req.Title,
		Date:   req.Date,
		Time:   req.Time,
		Venue:  req.Venue,
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to save event", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} Event
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/events/{id} [put]
func (cc *ContentController) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := cc.store.Events.Update(c.Param("id"), func(e Event) Event {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Time != nil {
			e.Time = *req.Time
		}
		if req.Venue != nil {
			e.Venue = *req.Venue
		}
		if req.Type != nil {
			e.Type = *req.Type
		}
		if req.Status != nil {
			e.Status = *req.Status
		}
		return e
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Event")
			return
		}
		responses.InternalServerError(c, "Failed to update event", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Content
// @Param id path string true "Event ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/events/{id} [delete]
func (cc *ContentController) DeleteEvent(c *gin.Context) {
	if err := cc.store.Events.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Event")
			return
		}
		responses.InternalServerError(c, "Failed to delete event", err)
		return
	}
	responses.Message(c, http.StatusOK, "Event deleted successfully")
}

// --- Team member handlers ---

// ListTeamMembers godoc
// @Summary List team members
// @Tags Content
// @Produce json
// @Success 200 {array} TeamMember
// @Router /content/team [get]
func (cc *ContentController) ListTeamMembers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.TeamMembers.List())
}

// CreateTeamMember godoc
// @Summary Add a team member
// @Tags Content
// @Accept json
// @Produce json
// @Param member body CreateTeamMemberRequest true "Team member"
// @Success 201 {object} TeamMember
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/team [post]
func (cc *ContentController) CreateTeamMember(c *gin.Context) {
	var req CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !memberImageValid(req.Image) {
		responses.BadRequest(c, "Image must be an initials string of at most 3 characters or a URL")
		return
	}

	created, err := cc.store.TeamMembers.Add(TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to save team member", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateTeamMember godoc
// @Summary Update a team member
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Team member ID"
// @Param member body UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} TeamMember
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/team/{id} [put]
func (cc *ContentController) UpdateTeamMember(c *gin.Context) {
	var req UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Image != nil && !memberImageValid(*req.Image) {
		responses.BadRequest(c, "Image must be an initials string of at most 3 characters or a URL")
		return
	}

	updated, err := cc.store.TeamMembers.Update(c.Param("id"), func(t TeamMember) TeamMember {
		if req.Name != nil {
			t.Name = *req.Name
		}
		if req.Role != nil {
			t.Role = *req.Role
		}
		if req.Description != nil {
			t.Description = *req.Description
		}
		if req.Image != nil {
			t.Image = *req.Image
		}
		return t
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team member")
			return
		}
		responses.InternalServerError(c, "Failed to update team member", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteTeamMember godoc
// @Summary Remove a team member
// @Tags Content
// @Param id path string true "Team member ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/team/{id} [delete]
func (cc *ContentController) DeleteTeamMember(c *gin.Context) {
	if err := cc.store.TeamMembers.Delete(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team member")
			return
		}
		responses.InternalServerError(c, "Failed to delete team member", err)
		return
	}
	responses.Message(c, http.StatusOK, "Team member deleted successfully")
}

// --- Registration handlers ---

// ListRegistrations godoc
// @Summary List registrations
// @Description Returns the signup audit trail in registration order.
// @Tags Content
// @Produce json
// @Success 200 {array} Registration
// @Router /content/registrations [get]
func (cc *ContentController) ListRegistrations(c *gin.Context) {
	c.JSON(http.StatusOK, cc.store.Registrations())
}

// CreateRegistration godoc
// @Summary Register for a sport
// @Description Public registration form submission. The registration
// @Description timestamp is stamped server-side; registrations cannot be edited.
// @Tags Content
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registration"
// @Success 201 {object} Registration
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/registrations [post]
func (cc *ContentController) CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := cc.store.AddRegistration(Registration{
		Name:           req.Name,
		RegisterNumber: req.RegisterNumber,
		Department:     req.Department,
		Year:           req.Year,
		Sport:          req.Sport,
		Email:          req.Email,
		Phone:          req.Phone,
	})
	if err != nil {
		responses.InternalServerError(c, "Failed to save registration", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Tags Content
// @Param id path string true "Registration ID"
// @Success 200 {object} responses.MessageResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/registrations/{id} [delete]
func (cc *ContentController) DeleteRegistration(c *gin.Context) {
	if err := cc.store.DeleteRegistration(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Registration")
			return
		}
		responses.InternalServerError(c, "Failed to delete registration", err)
		return
	}
	responses.Message(c, http.StatusOK, "Registration deleted successfully")
}
