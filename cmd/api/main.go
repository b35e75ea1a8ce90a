package main

import (
	"os"

	"clinicapi/cmd/internal/auth"
	"clinicapi/cmd/internal/domain/sqlite"
	"clinicapi/cmd/internal/domain/sqlite/repository"
	"clinicapi/cmd/internal/routes"
	"clinicapi/cmd/internal/service"
	"clinicapi/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	err := godotenv.Load()
	if err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	secret := os.Getenv("CLINIC_JWT_SECRET")
	if secret == "" {
		log.Fatal("CLINIC_JWT_SECRET is not set")
	}

	// Init SQLite
	db, err := sqlite.Init(envOr("CLINIC_DB_PATH", "./clinic.db"))
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	doctorRepo := repository.NewDoctorRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	apptRepo := repository.NewAppointmentRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)

	// Getting services
	doctorService := service.NewDoctorService(doctorRepo, validate)
	serviceService := service.NewServiceService(serviceRepo, validate)
	apptService := service.NewAppointmentService(apptRepo, doctorRepo, serviceRepo, validate)
	postService := service.NewBlogPostService(postRepo, validate)
	testimonialService := service.NewTestimonialService(testimonialRepo, validate)

	// Getting routes
	doctorRoutes := routes.NewDoctorDefault(doctorService)
	serviceRoutes := routes.NewServiceDefault(serviceService)
	apptRoutes := routes.NewAppointmentDefault(apptService)
	postRoutes := routes.NewBlogPostDefault(postService)
	testimonialRoutes := routes.NewTestimonialDefault(testimonialService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(auth.Middleware([]byte(secret)))

	// Doctors
	e.GET("/api/doctors", doctorRoutes.GetDoctors)
	e.POST("/api/doctors", doctorRoutes.CreateDoctor)
	e.PUT("/api/doctors/:id", doctorRoutes.UpdateDoctor)
	e.DELETE("/api/doctors/:id", doctorRoutes.DeleteDoctor)

	// Services
	e.GET("/api/services", serviceRoutes.GetServices)
	e.POST("/api/services", serviceRoutes.CreateService)
	e.PUT("/api/services/:id", serviceRoutes.UpdateService)
	e.DELETE("/api/services/:id", serviceRoutes.DeleteService)

	// Appointments
	e.GET("/api/appointments", apptRoutes.GetAppointments)
	e.POST("/api/appointments", apptRoutes.CreateAppointment)
	e.PUT("/api/appointments/:id", apptRoutes.UpdateAppointment)
	e.PATCH("/api/appointments/:id/status", apptRoutes.UpdateStatus)
	e.DELETE("/api/appointments/:id", apptRoutes.DeleteAppointment)

	// Blog posts
	e.GET("/api/posts", postRoutes.GetPosts)
	e.GET("/api/posts/:id", postRoutes.GetPost)
	e.POST("/api/posts", postRoutes.CreatePost)
	e.PUT("/api/posts/:id", postRoutes.UpdatePost)
	e.DELETE("/api/posts/:id", postRoutes.DeletePost)

	// Testimonials
	e.GET("/api/testimonials", testimonialRoutes.GetTestimonials)
	e.POST("/api/testimonials", testimonialRoutes.CreateTestimonial)
	e.PUT("/api/testimonials/:id", testimonialRoutes.UpdateTestimonial)
	e.DELETE("/api/testimonials/:id", testimonialRoutes.DeleteTestimonial)

	err = e.Start(envOr("CLINIC_HTTP_ADDR", ":6060"))
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("dateymd", validators.DateYMD)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
