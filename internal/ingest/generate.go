package ingest

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// RoleFamilies are the posting categories the sample generator knows.
func RoleFamilies() []string {
	families := make([]string, 0, len(roleTitles))
	for _, f := range familyOrder {
		families = append(families, f)
	}
	return families
}

var familyOrder = []string{"software_engineer", "data_science", "product", "devops", "security"}

var sampleCompanies = []string{
	"Google", "Microsoft", "Amazon", "Meta", "Apple",
	"Netflix", "Tesla", "Spotify", "Airbnb", "Uber",
	"LinkedIn", "Salesforce", "Adobe", "IBM", "Oracle",
	"Nvidia", "Intel", "Cisco", "Shopify", "Stripe",
}

var sampleLocations = []string{
	"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
	"Boston, MA", "Chicago, IL", "Los Angeles, CA", "Denver, CO",
	"Remote", "Hybrid - San Francisco", "Hybrid - New York",
}

var roleTitles = map[string][]string{
	"software_engineer": {
		"Software Engineer", "Senior Software Engineer", "Staff Software Engineer",
		"Backend Engineer", "Frontend Engineer", "Full Stack Engineer",
	},
	"data_science": {
		"Data Scientist", "Senior Data Scientist", "Machine Learning Engineer",
		"AI Engineer", "Data Analyst", "ML Research Scientist",
	},
	"product": {
		"Product Manager", "Senior Product Manager", "Product Designer",
		"UX Designer", "UI/UX Designer", "Product Lead",
	},
	"devops": {
		"DevOps Engineer", "Site Reliability Engineer", "Cloud Engineer",
		"Infrastructure Engineer", "Platform Engineer",
	},
	"security": {
		"Security Engineer", "Security Analyst", "Cybersecurity Specialist",
		"Application Security Engineer", "Security Architect",
	},
}

var roleSkills = map[string][]string{
	"software_engineer": {"Python", "Java", "JavaScript", "TypeScript", "React", "Node.js", "SQL", "Git", "AWS", "Docker"},
	"data_science":      {"Python", "R", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "SQL", "Pandas", "NumPy", "Statistics"},
	"product":           {"Product Strategy", "User Research", "Agile", "Jira", "Roadmapping", "Analytics", "Figma", "Stakeholder Management"},
	"devops":            {"Kubernetes", "Docker", "AWS", "Azure", "Terraform", "CI/CD", "Jenkins", "Monitoring", "Linux", "Python"},
	"security":          {"Security Analysis", "Penetration Testing", "SIEM", "Vulnerability Assessment", "Cloud Security", "Python", "Networking"},
}

var roleRequirements = map[string][]string{
	"software_engineer": {
		"3+ years of software development experience",
		"Strong programming skills in Python, Java, or JavaScript",
		"Experience with web frameworks and APIs",
		"Understanding of data structures and algorithms",
		"Experience with Git and version control",
	},
	"data_science": {
		"2+ years of data science or ML experience",
		"Strong programming skills in Python or R",
		"Experience with ML frameworks (TensorFlow, PyTorch, scikit-learn)",
		"Solid understanding of statistics and probability",
		"Experience with SQL and data manipulation",
	},
	"product": {
		"4+ years of product management experience",
		"Track record of shipping successful products",
		"Strong analytical and problem-solving skills",
		"Experience with Agile methodologies",
	},
	"devops": {
		"3+ years of DevOps or SRE experience",
		"Strong knowledge of cloud platforms (AWS, Azure, or GCP)",
		"Experience with containerization (Docker, Kubernetes)",
		"Proficiency in scripting (Python, Bash, or Go)",
		"Understanding of CI/CD pipelines and automation",
	},
	"security": {
		"3+ years of security engineering experience",
		"Strong understanding of security principles and best practices",
		"Knowledge of common vulnerabilities (OWASP Top 10)",
		"Experience with penetration testing or security assessments",
	},
}

var roleResponsibilities = map[string][]string{
	"software_engineer": {
		"Design and implement scalable backend services",
		"Write clean, maintainable, and well-tested code",
		"Participate in code reviews and technical discussions",
		"Debug and resolve production issues",
	},
	"data_science": {
		"Build and deploy machine learning models",
		"Analyze complex datasets to extract insights",
		"Develop data pipelines and workflows",
		"Present findings to stakeholders",
	},
	"product": {
		"Define product vision and strategy",
		"Prioritize features and manage roadmap",
		"Analyze metrics and user feedback",
		"Lead cross-functional product initiatives",
	},
	"devops": {
		"Manage cloud infrastructure and services",
		"Implement CI/CD pipelines and automation",
		"Monitor system performance and reliability",
		"Respond to incidents and outages",
	},
	"security": {
		"Conduct security assessments and penetration tests",
		"Implement security controls and best practices",
		"Monitor for security threats and incidents",
		"Develop security policies and procedures",
	},
}

// GenerateSampleJobs builds a deterministic sample corpus of count postings.
// An empty family generates across all role families; the same seed always
// yields the same corpus.
func GenerateSampleJobs(count int, family string, seed int64) ([]types.Job, error) {
	var families []string
	if family != "" {
		if _, ok := roleTitles[family]; !ok {
			return nil, fmt.Errorf("unknown role family %q (valid: %s)",
				family, strings.Join(RoleFamilies(), ", "))
		}
		families = []string{family}
	} else {
		families = familyOrder
	}

	rng := rand.New(rand.NewSource(seed))
	now := time.Now().UTC()

	jobs := make([]types.Job, 0, count)
	for i := 0; i < count; i++ {
		f := families[rng.Intn(len(families))]
		title := roleTitles[f][rng.Intn(len(roleTitles[f]))]
		company := sampleCompanies[rng.Intn(len(sampleCompanies))]
		location := sampleLocations[rng.Intn(len(sampleLocations))]

		salaryMin := (80 + rng.Intn(71)) * 1000
		salaryMax := salaryMin + (30+rng.Intn(71))*1000

		job := types.Job{
			ID:               fmt.Sprintf("sample-%04d", i+1),
			Title:            title,
			Company:          company,
			Location:         location,
			WorkType:         workTypeFor(location),
			JobType:          pick(rng, "Full-time", "Full-time", "Full-time", "Contract"),
			ExperienceLevel:  levelFor(title),
			SkillsRequired:   sampleSkills(rng, roleSkills[f], 6),
			Description:      sampleDescription(title, company, f),
			Requirements:     roleRequirements[f],
			Responsibilities: roleResponsibilities[f],
			SalaryMin:        salaryMin,
			SalaryMax:        salaryMax,
			PostedDate:       now.AddDate(0, 0, -rng.Intn(31)).Format("2006-01-02"),
			URL:              fmt.Sprintf("https://example.com/jobs/%07d", 1000000+rng.Intn(9000000)),
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func workTypeFor(location string) string {
	switch {
	case strings.Contains(location, "Remote"):
		return "Remote"
	case strings.Contains(location, "Hybrid"):
		return "Hybrid"
	default:
		return "On-site"
	}
}

// levelFor keeps sample postings consistent with their titles instead of
// rolling a level independently.
func levelFor(title string) string {
	return guessLevel(title)
}

func pick(rng *rand.Rand, choices ...string) string {
	return choices[rng.Intn(len(choices))]
}

// sampleSkills draws up to k distinct skills, preserving pool order.
func sampleSkills(rng *rand.Rand, pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	indices := rng.Perm(len(pool))[:k]
	picked := make(map[int]struct{}, k)
	for _, i := range indices {
		picked[i] = struct{}{}
	}
	skills := make([]string, 0, k)
	for i, s := range pool {
		if _, ok := picked[i]; ok {
			skills = append(skills, s)
		}
	}
	return skills
}

func sampleDescription(title, company, family string) string {
	switch family {
	case "software_engineer":
		return fmt.Sprintf("%s is seeking a talented %s to join our growing engineering team. "+
			"You will work on building scalable systems that serve millions of users worldwide.", company, title)
	case "data_science":
		return fmt.Sprintf("Join %s as a %s and help us leverage data to drive business decisions. "+
			"You'll build machine learning models and analyze complex datasets.", company, title)
	case "product":
		return fmt.Sprintf("%s is looking for an experienced %s to lead product initiatives and drive strategy. "+
			"You'll work closely with engineering, design, and business teams.", company, title)
	case "devops":
		return fmt.Sprintf("As a %s at %s, you'll build and maintain the infrastructure that powers our services. "+
			"You'll work on automation, monitoring, and reliability.", title, company)
	case "security":
		return fmt.Sprintf("%s is hiring a %s to help protect our systems and data. "+
			"You'll identify vulnerabilities and implement security controls.", company, title)
	default:
		return fmt.Sprintf("Join %s as a %s.", company, title)
	}
}
