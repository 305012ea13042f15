// Package careers provides the curated career catalog and the career path
// recommender built on the generic matching engine.
package careers

import (
	"sort"
	"strings"

	"github.com/Sakib9797/Hire-Skill/internal/types"
)

// Catalog returns the curated career path dataset. This is the knowledge
// base the recommender scores against; callers receive a fresh slice header
// but must treat the entries as read-only.
func Catalog() []types.Career {
	return catalog
}

// AllSkills returns every unique skill in the catalog, sorted.
func AllSkills() []string {
	seen := make(map[string]struct{})
	var skills []string
	for _, career := range catalog {
		for _, s := range append(append([]string{}, career.RequiredSkills...), career.OptionalSkills...) {
			key := strings.ToLower(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, s)
		}
	}
	sort.Strings(skills)
	return skills
}

var catalog = []types.Career{
	{
		Role:     "Full Stack Developer",
		Category: "Software Development",
		RequiredSkills: []string{
			"JavaScript", "React", "Node.js", "Python", "Flask", "Express",
			"MongoDB", "PostgreSQL", "REST API", "Git", "HTML", "CSS",
			"TypeScript", "Redux", "Docker",
		},
		OptionalSkills: []string{"AWS", "GraphQL", "Kubernetes", "CI/CD", "Testing"},
		Description:    "Develops both frontend and backend of web applications",
		AverageSalary:  "$85,000 - $130,000",
		GrowthRate:     "High",
	},
	{
		Role:     "Frontend Developer",
		Category: "Software Development",
		RequiredSkills: []string{
			"JavaScript", "React", "HTML", "CSS", "TypeScript",
			"Redux", "Webpack", "Git", "REST API", "Responsive Design",
		},
		OptionalSkills: []string{"Vue.js", "Angular", "Next.js", "SASS", "Testing"},
		Description:    "Creates user interfaces and client-side functionality",
		AverageSalary:  "$70,000 - $120,000",
		GrowthRate:     "High",
	},
	{
		Role:     "Backend Developer",
		Category: "Software Development",
		RequiredSkills: []string{
			"Python", "Java", "Node.js", "SQL", "PostgreSQL", "MongoDB",
			"REST API", "GraphQL", "Git", "Docker", "Microservices",
		},
		OptionalSkills: []string{"Kubernetes", "AWS", "Redis", "RabbitMQ", "gRPC"},
		Description:    "Builds server-side logic and database architecture",
		AverageSalary:  "$80,000 - $140,000",
		GrowthRate:     "High",
	},
	{
		Role:     "Data Scientist",
		Category: "Data Science",
		RequiredSkills: []string{
			"Python", "Machine Learning", "Statistics", "Pandas", "NumPy",
			"Scikit-learn", "TensorFlow", "SQL", "Data Visualization",
			"Jupyter", "Mathematics",
		},
		OptionalSkills: []string{"PyTorch", "Deep Learning", "NLP", "Big Data", "Spark"},
		Description:    "Analyzes data and builds predictive models",
		AverageSalary:  "$95,000 - $150,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "Machine Learning Engineer",
		Category: "AI/ML",
		RequiredSkills: []string{
			"Python", "Machine Learning", "Deep Learning", "TensorFlow",
			"PyTorch", "Scikit-learn", "Docker", "Kubernetes", "MLOps",
			"Statistics", "Linear Algebra",
		},
		OptionalSkills: []string{"NLP", "Computer Vision", "AWS SageMaker", "Azure ML"},
		Description:    "Deploys and maintains ML models in production",
		AverageSalary:  "$110,000 - $170,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "DevOps Engineer",
		Category: "Infrastructure",
		RequiredSkills: []string{
			"Docker", "Kubernetes", "AWS", "CI/CD", "Jenkins", "Git",
			"Linux", "Bash", "Python", "Terraform", "Monitoring",
		},
		OptionalSkills: []string{"Azure", "GCP", "Ansible", "Prometheus", "Grafana"},
		Description:    "Manages infrastructure and deployment pipelines",
		AverageSalary:  "$90,000 - $145,000",
		GrowthRate:     "High",
	},
	{
		Role:     "Mobile Developer",
		Category: "Mobile Development",
		RequiredSkills: []string{
			"React Native", "Swift", "Kotlin", "Java", "JavaScript",
			"iOS", "Android", "REST API", "Git", "Mobile UI/UX",
		},
		OptionalSkills: []string{"Flutter", "Firebase", "Redux", "GraphQL"},
		Description:    "Creates mobile applications for iOS and Android",
		AverageSalary:  "$75,000 - $130,000",
		GrowthRate:     "High",
	},
	{
		Role:     "Cloud Architect",
		Category: "Cloud Computing",
		RequiredSkills: []string{
			"AWS", "Azure", "GCP", "Cloud Security", "Microservices",
			"Docker", "Kubernetes", "Networking", "Serverless", "IAM",
		},
		OptionalSkills: []string{"Terraform", "CloudFormation", "Cost Optimization"},
		Description:    "Designs and implements cloud infrastructure solutions",
		AverageSalary:  "$120,000 - $180,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "Data Engineer",
		Category: "Data Engineering",
		RequiredSkills: []string{
			"Python", "SQL", "ETL", "Apache Spark", "Airflow", "Kafka",
			"Data Warehousing", "PostgreSQL", "MongoDB", "AWS", "Big Data",
		},
		OptionalSkills: []string{"Snowflake", "Redshift", "dbt", "Docker"},
		Description:    "Builds and maintains data pipelines and infrastructure",
		AverageSalary:  "$100,000 - $155,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "Cybersecurity Analyst",
		Category: "Security",
		RequiredSkills: []string{
			"Network Security", "Penetration Testing", "Encryption",
			"Firewalls", "SIEM", "Incident Response", "Linux", "Python",
			"Security Protocols", "Risk Assessment",
		},
		OptionalSkills: []string{"CISSP", "CEH", "Malware Analysis", "Cloud Security"},
		Description:    "Protects systems and networks from cyber threats",
		AverageSalary:  "$85,000 - $140,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "UI/UX Designer",
		Category: "Design",
		RequiredSkills: []string{
			"Figma", "Adobe XD", "Sketch", "User Research", "Wireframing",
			"Prototyping", "HTML", "CSS", "Design Systems", "Usability Testing",
		},
		OptionalSkills: []string{"JavaScript", "Animation", "Illustration", "Branding"},
		Description:    "Designs user interfaces and experiences",
		AverageSalary:  "$65,000 - $115,000",
		GrowthRate:     "Medium",
	},
	{
		Role:     "Product Manager",
		Category: "Product Management",
		RequiredSkills: []string{
			"Product Strategy", "Agile", "Roadmapping", "User Research",
			"Data Analysis", "Stakeholder Management", "Communication",
			"Market Research", "MVP Development", "SQL",
		},
		OptionalSkills: []string{"Python", "Jira", "Analytics Tools", "A/B Testing"},
		Description:    "Defines product vision and manages development lifecycle",
		AverageSalary:  "$95,000 - $155,000",
		GrowthRate:     "High",
	},
	{
		Role:     "QA Engineer",
		Category: "Quality Assurance",
		RequiredSkills: []string{
			"Testing", "Selenium", "Jest", "Cypress", "Test Automation",
			"Manual Testing", "Bug Tracking", "Git", "CI/CD", "API Testing",
		},
		OptionalSkills: []string{"Python", "Java", "Performance Testing", "Security Testing"},
		Description:    "Ensures software quality through testing",
		AverageSalary:  "$60,000 - $105,000",
		GrowthRate:     "Medium",
	},
	{
		Role:     "Blockchain Developer",
		Category: "Blockchain",
		RequiredSkills: []string{
			"Solidity", "Ethereum", "Smart Contracts", "Web3", "Cryptography",
			"JavaScript", "Node.js", "Blockchain Architecture", "Git",
		},
		OptionalSkills: []string{"Rust", "Hyperledger", "DeFi", "NFTs", "Hardhat"},
		Description:    "Develops decentralized applications and smart contracts",
		AverageSalary:  "$100,000 - $180,000",
		GrowthRate:     "Very High",
	},
	{
		Role:     "Business Analyst",
		Category: "Business",
		RequiredSkills: []string{
			"Data Analysis", "SQL", "Excel", "Requirements Gathering",
			"Process Modeling", "Stakeholder Management", "Documentation",
			"Agile", "Business Intelligence", "Communication",
		},
		OptionalSkills: []string{"Python", "Tableau", "Power BI", "JIRA"},
		Description:    "Bridges gap between business needs and technical solutions",
		AverageSalary:  "$70,000 - $120,000",
		GrowthRate:     "Medium",
	},
}
