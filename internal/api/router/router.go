package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sobreaviso/backend/config"
	"sobreaviso/backend/internal/api/handler"
	"sobreaviso/backend/internal/api/middleware"
	"sobreaviso/backend/internal/model"
	"sobreaviso/backend/pkg/jwt"
	"sobreaviso/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Setup inicializa e devolve o motor de rotas Gin
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── Middlewares globais ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── Verificação de saúde ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API pública (sem autenticação) ──
	public := r.Group("/api/public")
	public.Use(middleware.RateLimit(rdb, 60, time.Minute))
	{
		public.GET("/today", h.Public.Today)
	}

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// Autenticação (sem token)
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 20, time.Minute))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Rotas autenticadas
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// Autenticação (com token)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// Contas de acesso (somente admin geral)
			users := authorized.Group("/users", middleware.RoleAuth(model.RoleAdmin))
			{
				users.GET("", h.User.ListUsers)
				users.GET("/:id", h.User.GetUser)
				users.POST("", h.User.CreateUser)
				users.PUT("/:id", h.User.UpdateUser)
				users.DELETE("/:id", h.User.DeleteUser)
			}

			// Hospitais
			hospitals := authorized.Group("/hospitals")
			{
				hospitals.GET("", h.Hospital.ListHospitals)
				hospitals.GET("/:id", h.Hospital.GetHospital)
				hospitals.POST("", middleware.RoleAuth(model.RoleAdmin), h.Hospital.CreateHospital)
				hospitals.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Hospital.UpdateHospital)
				hospitals.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Hospital.DeleteHospital)
			}

			// Setores
			sectors := authorized.Group("/sectors")
			{
				sectors.GET("", h.Sector.ListSectors)
				sectors.GET("/:id", h.Sector.GetSector)
				sectors.POST("", middleware.RoleAuth(model.RoleAdmin), h.Sector.CreateSector)
				sectors.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Sector.UpdateSector)
				sectors.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Sector.DeleteSector)
			}

			// Equipes
			teams := authorized.Group("/teams")
			{
				teams.GET("", h.Team.ListTeams)
				teams.GET("/:id", h.Team.GetTeam)
				teams.POST("", middleware.RoleAuth(model.RoleAdmin), h.Team.CreateTeam)
				teams.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Team.UpdateTeam)
				teams.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Team.DeleteTeam)
			}

			// Faixas de horário
			timeSlots := authorized.Group("/time-slots")
			{
				timeSlots.GET("", h.TimeSlot.ListTimeSlots)
				timeSlots.GET("/:id", h.TimeSlot.GetTimeSlot)
				timeSlots.POST("", middleware.RoleAuth(model.RoleAdmin), h.TimeSlot.CreateTimeSlot)
				timeSlots.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.TimeSlot.UpdateTimeSlot)
				timeSlots.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.TimeSlot.DeleteTimeSlot)
			}

			// Profissionais (admin de equipe enxerga só a própria equipe;
			// o recorte é aplicado no handler)
			people := authorized.Group("/people")
			{
				people.GET("", h.Person.ListPeople)
				people.GET("/:id", h.Person.GetPerson)
				people.POST("", h.Person.CreatePerson)
				people.PUT("/:id", h.Person.UpdatePerson)
				people.DELETE("/:id", h.Person.DeletePerson)
			}

			// Escalas mensais
			schedules := authorized.Group("/schedules")
			{
				schedules.GET("", h.Schedule.ListSchedules)
				schedules.GET("/:id", h.Schedule.GetSchedule)
				schedules.POST("", h.Schedule.CreateSchedule)
				schedules.PUT("/:id", h.Schedule.UpdateSchedule)
				schedules.DELETE("/:id", h.Schedule.DeleteSchedule)
				schedules.PUT("/:id/assignment", h.Schedule.SetAssignment)
				schedules.PUT("/:id/visible-people", h.Schedule.SetVisiblePeople)
				schedules.POST("/:id/autofill", h.Schedule.AutoFill)
				schedules.GET("/:id/calendar", h.Schedule.GetCalendar)
				schedules.GET("/:id/matrix", h.Schedule.GetMatrix)

				// Exportações da escala
				schedules.GET("/:id/export/calendar.pdf", h.Export.CalendarPDF)
				schedules.GET("/:id/export/calendar.xlsx", h.Export.CalendarXLSX)
				schedules.GET("/:id/export/matrix.pdf", h.Export.MatrixPDF)
				schedules.GET("/:id/export/matrix.xlsx", h.Export.MatrixXLSX)
			}

			// Feriados (prévia a partir de arquivo ICS)
			authorized.POST("/holidays/preview", h.Holiday.Preview)
		}
	}

	return r
}
