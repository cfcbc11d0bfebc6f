package content

// Category is a titled group of list items.
type Category struct {
	Title string
	Items []string
}

// Report identity.
const (
	ReportTitle    = "H3 Network Platform"
	ReportSubtitle = "Development Progress Report"
	ReportDate     = "November 6, 2025"
	SessionFocus   = "Production Backend Hardening"
	ReportAuthor   = "H3 Network Platform Development Team"

	// OutputName is the file the report is rendered to.
	OutputName = "H3_Network_Progress_Report_Nov_6_2025.pdf"
)

// Section headers.
const (
	SectionSummary         = "🎯 Executive Summary"
	SectionAccomplishments = "📊 Today's Accomplishments"
	SectionStatus          = "🏗️ Current Project Status"
	SectionMetrics         = "📈 Technical Metrics"
	SectionNext            = "🚀 What's Next: Launch Preparation Phase"
	SectionImpact          = "🌟 Platform Impact Potential"

	SubtitleHardening = "🛡️ Backend Hardening Initiative (100% Complete)"
	SubtitleChecklist = "Production Readiness Checklist"
	SubtitleTimeline  = "Timeline Recommendation: 2-3 weeks to production launch"
)

// Body text. Values ending in Markup contain inline tags.
const (
	SummaryMarkup = "Today's development session focused on transforming the H3 Network platform backend from " +
		"development-ready to <b>production-bulletproof</b>. We implemented enterprise-grade systems " +
		"to handle multiple creators uploading daily content with high concurrent user traffic."

	KeyAchievementMarkup = "<b>Key Achievement:</b> Complete production readiness with 8 new monitoring and reliability systems."

	ImpactIntro = "The H3 Network Platform is now positioned to significantly impact criminal justice reform by:"

	BottomLineMarkup = "<b>Bottom Line:</b> The platform is production-ready and positioned to make a meaningful " +
		"difference in criminal justice reform through technology and storytelling."

	FooterGenerated = "Report Generated: " + ReportDate
	FooterTeam      = ReportAuthor
)

// Accomplishments are the six completed hardening work streams.
var Accomplishments = []Category{
	{"1. Comprehensive Monitoring System ✅", []string{
		"Real-time system health monitoring",
		"Database connection tracking",
		"API response time monitoring",
		"Memory usage alerts",
		"Cache performance tracking",
		"Automated alerting system",
	}},
	{"2. Database Connection Pooling ✅", []string{
		"Production-optimized connection pooling (20 connections)",
		"Connection usage monitoring",
		"Slow query detection (>1s alerts)",
		"Graceful shutdown handling",
		"Health check automation",
	}},
	{"3. Asynchronous Job Queue System ✅", []string{
		"Bulk video upload processing",
		"Bulk blog upload processing",
		"Content processing pipeline",
		"Email notification system",
		"Retry logic with exponential backoff",
		"Job status tracking and monitoring",
	}},
	{"4. Input Validation & Security ✅", []string{
		"Comprehensive Zod schema validation",
		"HTML sanitization with DOMPurify",
		"XSS attack prevention",
		"URL validation and sanitization",
		"Content moderation framework",
		"YouTube ID validation",
	}},
	{"5. Enterprise Error Handling ✅", []string{
		"Custom H3NetworkError class",
		"User-friendly error messages",
		"Error factory patterns",
		"Database error handling",
		"Circuit breaker pattern",
		"Retry mechanisms",
		"Error boundary system",
	}},
	{"6. Automated Backup System ✅", []string{
		"Scheduled backups (daily/weekly/monthly)",
		"Backup compression and encryption",
		"Multi-destination backup storage",
		"Backup verification and health checks",
		"Automated cleanup with retention policies",
		"Restore procedures",
	}},
}

// PhaseData is the project status table; the first row is the header.
var PhaseData = [][]string{
	{"Phase", "Status", "Completion"},
	{"Phase 1: Foundation & Core MVP", "✅ Complete", "100%"},
	{"Phase 2: Creator Dashboard & Content", "✅ Complete", "100%"},
	{"Phase 3: Advanced Content Scheduling", "✅ Complete", "100%"},
	{"Phase 4: Production Backend Hardening", "✅ Complete", "100%"},
}

// PhaseColWidths are the phase table column widths in points.
var PhaseColWidths = []float64{3 * inch, 2 * inch, 1 * inch}

// MetricsData is the session metrics table; the first row is the header.
var MetricsData = [][]string{
	{"Metric", "Today's Session"},
	{"New Files Created", "8 production systems"},
	{"Lines of Code Added", "3,904 insertions"},
	{"Files Modified", "13 total files"},
	{"New API Endpoints", "3 monitoring endpoints"},
	{"Dependencies Added", "1 (isomorphic-dompurify)"},
}

// MetricsColWidths are the metrics table column widths in points.
var MetricsColWidths = []float64{3 * inch, 3 * inch}

// Checklist is the production readiness checklist.
var Checklist = []string{
	"✅ Scalability: Connection pooling, job queues",
	"✅ Reliability: Error handling, circuit breakers, retries",
	"✅ Monitoring: Health checks, performance tracking, alerts",
	"✅ Security: Input validation, XSS prevention, rate limiting",
	"✅ Data Protection: Automated backups, encryption",
	"✅ Performance: Caching, optimization, slow query detection",
	"✅ Maintainability: Comprehensive logging, admin dashboard",
}

// NextSteps is the three-week launch plan.
var NextSteps = []Category{
	{"Week 1: User Experience Polish", []string{
		"Mobile responsiveness testing and optimization",
		"Accessibility (WCAG 2.1) compliance review",
		"Performance optimization for content loading",
		"User onboarding experience refinement",
	}},
	{"Week 2: Production Deployment", []string{
		"Vercel deployment configuration",
		"Environment variable management",
		"SSL certificate setup",
		"Domain configuration (h3network.org)",
		"CDN setup for video thumbnails",
	}},
	{"Week 3: Beta Testing & Launch", []string{
		"Beta user recruitment (10-20 users)",
		"Feedback collection system",
		"Performance monitoring in production",
		"Content migration and creator setup",
	}},
}

// ImpactItems are "Label: statement" lines; the label is set in bold.
var ImpactItems = []string{
	"Amplifying Voices: Providing creators with professional content management tools",
	"Building Community: Connecting people affected by the criminal justice system",
	"Educational Outreach: Facilitating content discovery and engagement",
	"Scaling Impact: Supporting multiple creators with efficient backend systems",
	"Sustainable Growth: Enterprise-grade infrastructure ready for expansion",
}
