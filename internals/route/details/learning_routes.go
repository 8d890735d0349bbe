package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	caseStudyRoutes "counseltrack_backend/internals/features/learning/case_studies/route"
	certificateRoutes "counseltrack_backend/internals/features/learning/certificates/route"
	courseRoutes "counseltrack_backend/internals/features/learning/courses/route"
	discussionRoutes "counseltrack_backend/internals/features/learning/discussions/route"
	journalRoutes "counseltrack_backend/internals/features/learning/journals/route"
	quizRoutes "counseltrack_backend/internals/features/learning/quizzes/route"
)

func LearningPublicRoutes(api fiber.Router, db *gorm.DB) {
	certificateRoutes.CertificatePublicRoutes(api, db)
}

func LearningPrivateRoutes(api fiber.Router, db *gorm.DB) {
	quizRoutes.QuizUserRoutes(api, db)
	courseRoutes.CourseUserRoutes(api, db)
	caseStudyRoutes.CaseStudyUserRoutes(api, db)
	journalRoutes.JournalRoutes(api, db)
	certificateRoutes.CertificateUserRoutes(api, db)
	discussionRoutes.DiscussionUserRoutes(api, db)
}

func LearningAdminRoutes(api fiber.Router, db *gorm.DB) {
	quizRoutes.QuizAdminRoutes(api, db)
	courseRoutes.CourseAdminRoutes(api, db)
	caseStudyRoutes.CaseStudyAdminRoutes(api, db)
	certificateRoutes.CertificateAdminRoutes(api, db)
	discussionRoutes.DiscussionAdminRoutes(api, db)
}
