package prd

import "basegraph.app/blueprint/internal/model"

// Static section text. Each function returns a fresh value so documents never
// share maps or slices.

const (
	defaultProjectName = "ERPNext Custom Application"
	documentVersion    = "1.0"
	dateLayout         = "2006-01-02"
)

func stakeholders() []string {
	return []string{"Business Users", "System Administrator", "IT Department", "Management", "End Users"}
}

func successMetrics() []string {
	return []string{
		"User adoption rate > 80%",
		"Process efficiency improvement > 25%",
		"Data accuracy improvement > 30%",
		"System uptime > 99.5%",
		"User satisfaction score > 4.0/5.0",
	}
}

func baseKeyFeatures() []string {
	return []string{
		"Role-based access control",
		"Comprehensive reporting",
		"Workflow automation",
		"Data validation and integrity",
	}
}

func baseInScope() []string {
	return []string{
		"User authentication and authorization",
		"Basic reporting and dashboards",
		"Data import/export capabilities",
		"Workflow automation",
	}
}

func outOfScope() []string {
	return []string{
		"Advanced analytics and BI",
		"Mobile application development",
		"Third-party system integrations (Phase 2)",
		"Custom UI/UX beyond standard ERPNext",
	}
}

func objectives() []string {
	return []string{
		"Implement comprehensive data management solution",
		"Automate manual business processes",
		"Improve data accuracy and consistency",
		"Provide real-time visibility into operations",
		"Enable scalable business growth",
		"Reduce operational overhead and errors",
	}
}

func targetUsers() []model.TargetUser {
	return []model.TargetUser{
		{Role: "End Users", Description: "Day-to-day system users"},
		{Role: "Managers", Description: "Supervisory and approval roles"},
		{Role: "Administrators", Description: "System configuration and maintenance"},
		{Role: "Executives", Description: "High-level reporting and dashboards"},
	}
}

func assumptions() []string {
	return []string{
		"ERPNext infrastructure is available and properly configured",
		"Users have basic computer literacy and ERPNext experience",
		"Business processes are well-defined and documented",
		"Stakeholders are available for requirements validation",
		"Data migration from existing systems is planned separately",
		"Internet connectivity is reliable and adequate",
	}
}

func baseConstraints() []string {
	return []string{
		"Must work within ERPNext framework limitations",
		"Budget and timeline constraints apply",
		"Must maintain ERPNext upgrade compatibility",
		"Security and compliance requirements must be met",
	}
}

func dependencies() []string {
	return []string{
		"ERPNext platform availability and stability",
		"Database server capacity and performance",
		"Network infrastructure and connectivity",
		"User training and change management",
		"Data quality and migration readiness",
		"Business process documentation and validation",
	}
}

func dataManagement() []string {
	return []string{
		"Maintain data integrity and consistency",
		"Support data import/export functionality",
		"Implement data validation rules",
		"Provide audit trail for all changes",
	}
}

func reportingAnalytics() []string {
	return []string{
		"Generate standard reports for all entities",
		"Provide dashboard views for key metrics",
		"Support custom report generation",
		"Enable data export in multiple formats",
	}
}

func technicalRequirements() model.TechnicalRequirements {
	return model.TechnicalRequirements{
		Platform: model.Table{
			"framework":          "ERPNext/Frappe Framework",
			"database":           "MariaDB/MySQL",
			"web_server":         "Nginx",
			"application_server": "Python/Gunicorn",
			"caching":            "Redis",
		},
		Performance: model.Table{
			"response_time":    "< 2 seconds for standard operations",
			"concurrent_users": "50+ concurrent users",
			"uptime":           "99.5% availability",
			"scalability":      "Horizontal scaling capability",
		},
		Security: model.Table{
			"authentication":  "ERPNext built-in authentication",
			"authorization":   "Role-based access control",
			"data_encryption": "HTTPS/TLS encryption",
			"audit_logging":   "Complete audit trail",
		},
		Backup: model.Table{
			"frequency":     "Daily automated backups",
			"retention":     "30 days backup retention",
			"recovery_time": "< 4 hours RTO",
			"testing":       "Monthly backup testing",
		},
	}
}

func systemArchitecture() model.SystemArchitecture {
	return model.SystemArchitecture{
		Overall: model.Table{
			"pattern":   "MVC (Model-View-Controller)",
			"framework": "Frappe Framework",
			"database":  "MariaDB with ORM",
			"frontend":  "Frappe UI (Vue.js based)",
			"backend":   "Python/Frappe",
		},
		Components: model.Table{
			"presentation_layer":   "Web-based UI using Frappe Desk",
			"business_logic_layer": "Python controllers and DocType methods",
			"data_access_layer":    "Frappe ORM and database abstraction",
			"integration_layer":    "REST API and webhooks",
		},
		Deployment: model.Table{
			"application_server": "Gunicorn/uWSGI",
			"web_server":         "Nginx (reverse proxy)",
			"database_server":    "MariaDB",
			"caching_layer":      "Redis",
			"file_storage":       "Local filesystem or cloud storage",
		},
		Scalability: []string{
			"Horizontal scaling through load balancing",
			"Database read replicas for reporting",
			"CDN for static assets",
			"Microservices for specific integrations",
		},
	}
}

func internalIntegrations() []string {
	return []string{
		"ERPNext standard modules integration",
		"Custom DocType relationships",
		"Workflow integrations",
	}
}

func apiRequirements() model.Table {
	return model.Table{
		"rest_api":       "Standard ERPNext REST API",
		"authentication": "Token-based authentication",
		"rate_limiting":  "API rate limiting implementation",
		"documentation":  "Swagger/OpenAPI documentation",
	}
}

func securityRequirements() model.SecurityRequirements {
	return model.SecurityRequirements{
		Authentication: model.Table{
			"mechanism":          "ERPNext built-in authentication",
			"password_policy":    "Strong password requirements",
			"session_management": "Secure session handling",
			"multi_factor_auth":  "Optional 2FA support",
		},
		Authorization: model.Table{
			"access_control":    "Role-based access control (RBAC)",
			"permission_levels": "Read, Write, Create, Delete, Submit",
			"data_isolation":    "User-level data access restrictions",
			"audit_trail":       "Complete action logging",
		},
		DataProtection: model.Table{
			"encryption_in_transit": "HTTPS/TLS encryption",
			"encryption_at_rest":    "Database encryption (optional)",
			"data_masking":          "Sensitive data masking in logs",
			"backup_security":       "Encrypted backups",
		},
		Compliance: model.Table{
			"gdpr":               "Data privacy compliance",
			"audit_requirements": "Audit trail maintenance",
			"data_retention":     "Data retention policies",
			"right_to_deletion":  "Data deletion capabilities",
		},
	}
}

func performanceRequirements() model.PerformanceRequirements {
	return model.PerformanceRequirements{
		ResponseTime: model.Table{
			"page_load":         "< 3 seconds",
			"form_submission":   "< 2 seconds",
			"search_results":    "< 1 second",
			"report_generation": "< 10 seconds",
		},
		Throughput: model.Table{
			"concurrent_users":        "50+ users",
			"transactions_per_second": "100+ TPS",
			"peak_load_handling":      "2x normal load capacity",
		},
		Scalability: model.Table{
			"horizontal_scaling": "Load balancer support",
			"database_scaling":   "Read replica support",
			"storage_scaling":    "Elastic storage capacity",
		},
		Availability: model.Table{
			"uptime_target":     "99.5%",
			"recovery_time":     "< 4 hours RTO",
			"backup_frequency":  "Daily automated backups",
			"disaster_recovery": "Hot standby capability",
		},
	}
}

func uiuxRequirements() model.UIUXRequirements {
	return model.UIUXRequirements{
		DesignPrinciples: []string{
			"Intuitive and user-friendly interface",
			"Consistent with ERPNext design standards",
			"Responsive design for mobile devices",
			"Accessibility compliance (WCAG 2.1)",
		},
		UserInterface: model.Table{
			"framework":         "Frappe UI components",
			"responsive_design": "Mobile-first approach",
			"browser_support":   "Modern browsers (Chrome, Firefox, Safari, Edge)",
			"themes":            "ERPNext standard themes",
		},
		UserExperience: model.Table{
			"navigation":     "Intuitive menu structure",
			"search":         "Global and contextual search",
			"help_system":    "Inline help and documentation",
			"error_handling": "User-friendly error messages",
		},
		Accessibility: model.Table{
			"keyboard_navigation": "Full keyboard accessibility",
			"screen_reader":       "Screen reader compatibility",
			"contrast_ratio":      "WCAG AA contrast standards",
			"font_sizes":          "Scalable font sizes",
		},
	}
}

func workflowStates() []string {
	return []string{"Draft", "Pending Approval", "Approved", "Rejected", "Completed"}
}

func workflowTransitions() []model.Transition {
	return []model.Transition{
		{From: "Draft", To: "Pending Approval", Action: "Submit"},
		{From: "Pending Approval", To: "Approved", Action: "Approve"},
		{From: "Pending Approval", To: "Rejected", Action: "Reject"},
		{From: "Approved", To: "Completed", Action: "Complete"},
	}
}

func workflowRoles() []string {
	return []string{"Employee", "Manager", "Administrator"}
}

func workflowNotifications() []string {
	return []string{
		"Email notification on state change",
		"Dashboard alerts for pending approvals",
	}
}

func dashboards() model.Table {
	return model.Table{
		"executive_dashboard":   "High-level KPIs and metrics",
		"operational_dashboard": "Day-to-day operational metrics",
		"user_dashboard":        "Personalized user metrics",
	}
}

func analytics() model.Table {
	return model.Table{
		"data_visualization":  "Charts and graphs for key metrics",
		"trend_analysis":      "Historical data analysis",
		"drill_down":          "Ability to drill down into details",
		"export_capabilities": "PDF, Excel, CSV export options",
	}
}

func realTimeMonitoring() model.Table {
	return model.Table{
		"live_dashboards": "Real-time data updates",
		"alerts":          "Automated alerts for thresholds",
		"notifications":   "User notifications for important events",
	}
}

func deploymentPlan() model.DeploymentPlan {
	return model.DeploymentPlan{
		Strategy: model.DeploymentStrategy{
			Approach:     "Phased deployment",
			Environments: []string{"Development", "Testing", "Staging", "Production"},
			RollbackPlan: "Automated rollback capability",
			BlueGreen:    "Zero-downtime deployment",
		},
		Infrastructure: model.Table{
			"server_specifications": "Based on ERPNext requirements",
			"database_setup":        "MariaDB with replication",
			"load_balancer":         "Nginx load balancer",
			"monitoring":            "System and application monitoring",
		},
		Phases: []model.DeploymentPhase{
			{Phase: "Phase 1 - Core Setup", Duration: "1-2 weeks", Deliverables: []string{"Basic DocTypes", "Core functionality"}},
			{Phase: "Phase 2 - Business Logic", Duration: "2-3 weeks", Deliverables: []string{"Workflows", "Business rules", "Validations"}},
			{Phase: "Phase 3 - Integration & Reports", Duration: "1-2 weeks", Deliverables: []string{"Integrations", "Reports", "Dashboards"}},
			{Phase: "Phase 4 - Testing & Go-Live", Duration: "1-2 weeks", Deliverables: []string{"Testing", "Training", "Production deployment"}},
		},
	}
}

func testingStrategy() model.TestingStrategy {
	return model.TestingStrategy{
		Levels: model.Table{
			"unit_testing":            "Python unit tests for business logic",
			"integration_testing":     "API and database integration tests",
			"system_testing":          "End-to-end system functionality",
			"user_acceptance_testing": "Business user validation",
		},
		Types: model.Table{
			"functional_testing":  "Feature functionality validation",
			"performance_testing": "Load and stress testing",
			"security_testing":    "Security vulnerability assessment",
			"usability_testing":   "User experience validation",
		},
		Automation: model.Table{
			"automated_tests":    "Selenium-based UI automation",
			"api_testing":        "REST API automated testing",
			"regression_testing": "Automated regression test suite",
			"continuous_testing": "CI/CD pipeline integration",
		},
		TestData: model.Table{
			"test_data_creation": "Automated test data generation",
			"data_refresh":       "Regular test data refresh",
			"data_privacy":       "Anonymized production data",
		},
	}
}

func maintenancePlan() model.MaintenancePlan {
	return model.MaintenancePlan{
		Types: model.Table{
			"preventive_maintenance": "Regular system health checks",
			"corrective_maintenance": "Bug fixes and issue resolution",
			"adaptive_maintenance":   "System updates and enhancements",
			"perfective_maintenance": "Performance optimization",
		},
		Schedule: model.Table{
			"daily":     "System health monitoring",
			"weekly":    "Performance analysis and optimization",
			"monthly":   "Security updates and patches",
			"quarterly": "System review and enhancement planning",
		},
		SupportModel: model.Table{
			"level_1_support":    "User support and basic troubleshooting",
			"level_2_support":    "Technical issue resolution",
			"level_3_support":    "Development and advanced technical support",
			"escalation_process": "Clear escalation procedures",
		},
		Documentation: model.Table{
			"user_documentation":      "Keep user guides updated",
			"technical_documentation": "Maintain technical specifications",
			"training_materials":      "Update training content",
			"knowledge_base":          "Maintain FAQ and troubleshooting guides",
		},
	}
}

func riskProcess() model.Table {
	return model.Table{
		"identification": "Regular risk assessment meetings",
		"analysis":       "Risk probability and impact analysis",
		"response":       "Risk mitigation and contingency planning",
		"monitoring":     "Ongoing risk monitoring and review",
	}
}

func criticalPath() []string {
	return []string{
		"Requirements analysis",
		"DocType development",
		"Workflow implementation",
		"Testing and validation",
		"Production deployment",
	}
}

func resourceRequirements() model.ResourceRequirements {
	return model.ResourceRequirements{
		Human: model.Table{
			"project_manager":      "0.5 FTE for project duration",
			"erpnext_developer":    "1.0 FTE for development phase",
			"business_analyst":     "0.5 FTE for requirements and testing",
			"qa_tester":            "0.5 FTE for testing phase",
			"system_administrator": "0.25 FTE for deployment and setup",
		},
		Technical: model.Table{
			"development_environment": "ERPNext development setup",
			"testing_environment":     "Separate testing instance",
			"staging_environment":     "Production-like staging setup",
			"production_environment":  "Production ERPNext instance",
		},
		Infrastructure: model.Table{
			"server_capacity":   "Based on user load and data volume",
			"database_storage":  "Estimated based on data model",
			"backup_storage":    "3x production storage for backups",
			"network_bandwidth": "Adequate for user concurrency",
		},
		Budget: model.Table{
			"development_costs":    "Developer time and resources",
			"infrastructure_costs": "Server and hosting expenses",
			"licensing_costs":      "ERPNext licensing (if applicable)",
			"training_costs":       "User training and documentation",
		},
	}
}

func baseFunctionalCriteria() []string {
	return []string{
		"User authentication and authorization functioning",
		"Data validation and business rules enforced",
		"Workflows operating as designed",
		"Reports generating accurate data",
	}
}

func performanceCriteria() []string {
	return []string{
		"Page load times under 3 seconds",
		"System supports 50+ concurrent users",
		"99.5% system uptime achieved",
		"Database queries optimized for performance",
	}
}

func businessCriteria() []string {
	return []string{
		"User adoption rate above 80%",
		"Process efficiency improved by 25%",
		"Data accuracy improved by 30%",
		"User satisfaction score above 4.0/5.0",
	}
}

func technicalCriteria() []string {
	return []string{
		"Zero critical bugs in production",
		"All security requirements met",
		"Integration points functioning correctly",
		"Backup and recovery procedures tested",
	}
}

var glossaryTerms = map[string]string{
	"DocType":   "ERPNext document type definition",
	"Workflow":  "Automated business process flow",
	"Role":      "User access level and permissions",
	"Dashboard": "Visual summary of key metrics and data",
	"Report":    "Structured presentation of system data",
}

func technicalSpecifications() model.TechnicalSpecifications {
	return model.TechnicalSpecifications{
		FrameworkVersion:  "ERPNext 14.x / Frappe 14.x",
		PythonVersion:     "3.8+",
		DatabaseVersion:   "MariaDB 10.3+",
		SupportedBrowsers: []string{"Chrome 90+", "Firefox 88+", "Safari 14+", "Edge 90+"},
		MobileSupport:     "Responsive web design",
		APIVersion:        "ERPNext REST API v1",
	}
}

func references() []string {
	return []string{
		"ERPNext Documentation: https://docs.erpnext.com",
		"Frappe Framework Documentation: https://frappeframework.com",
		"ERPNext User Manual: https://docs.erpnext.com/docs/user/manual",
	}
}
