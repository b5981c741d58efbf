package content

import (
	"github.com/gin-gonic/gin"
)

// RegisterContentRoutes mounts the content management surface under
// /content. Registrations have no update route: the collection is an
// append-only audit trail.
func RegisterContentRoutes(router *gin.RouterGroup, store *Store) {
	controller := NewContentController(store)

	group := router.Group("/content")
	{
		achievements := group.Group("/achievements")
		{
			achievements.GET("", controller.ListAchievements)
			achievements.POST("", controller.CreateAchievement)
			achievements.PUT("/:id", controller.UpdateAchievement)
			achievements.DELETE("/:id", controller.DeleteAchievement)
		}

		gallery := group.Group("/gallery")
		{
			gallery.GET("", controller.ListGalleryImages)
			gallery.POST("", controller.CreateGalleryImage)
			gallery.PUT("/:id", controller.UpdateGalleryImage)
			gallery.DELETE("/:id", controller.DeleteGalleryImage)
		}

		sports := group.Group("/sports")
		{
			sports.GET("", controller.ListSports)
			sports.POST("", controller.CreateSport)
			sports.PUT("/:id", controller.UpdateSport)
			sports.DELETE("/:id", controller.DeleteSport)
		}

		events := group.Group("/events")
		{
			events.GET("", controller.ListEvents)
			events.POST("", controller.CreateEvent)
			events.PUT("/:id", controller.UpdateEvent)
			events.DELETE("/:id", controller.DeleteEvent)
		}

		team := group.Group("/team")
		{
			team.GET("", controller.ListTeamMembers)
			team.POST("", controller.CreateTeamMember)
			team.PUT("/:id", controller.UpdateTeamMember)
			team.DELETE("/:id", controller.DeleteTeamMember)
		}

		registrations := group.Group("/registrations")
		{
			registrations.GET("", controller.ListRegistrations)
			registrations.POST("", controller.CreateRegistration)
			registrations.DELETE("/:id", controller.DeleteRegistration)
		}
	}
}
