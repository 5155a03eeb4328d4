package content

import (
	"time"

	"github.com/blkoutuk/ivor/internal/domain"
)

var fixtureUpdatedAt = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

// fixtureKnowledgeItems returns the curated community knowledge base used
// until partner organizations publish their own content exports.
func fixtureKnowledgeItems() []*domain.KnowledgeItem {
	return []*domain.KnowledgeItem{
		{
			ID:              "kb-1",
			Question:        "mental health support for Black queer people",
			Answer:          "Black Thrive BQC provides culturally competent mental health services specifically designed for Black queer individuals. They understand the unique challenges of being both Black and queer in the UK, including dealing with racism within queer spaces and homophobia/transphobia within Black communities. They offer individual therapy, group support, and community workshops. Contact them at info@blackthrivebqc.org or visit their website. They also have a 24/7 crisis support line.",
			Category:        "mental health",
			Organization:    "Black Thrive BQC",
			Tags:            []string{"mental health", "therapy", "counseling", "crisis support", "culturally competent"},
			Priority:        domain.PriorityHigh,
			Region:          "London, Birmingham, Manchester",
			CulturalContext: "Specifically designed for Black queer experiences and intersectionality",
			Accessibility:   "BSL interpreters available, wheelchair accessible offices",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-2",
			Question:        "trans support services",
			Answer:          "Black Trans Hub offers comprehensive support for Black trans individuals, including peer support groups, advocacy services, and practical resources like clothing exchanges and legal name change support. They provide a safe space that truly understands the intersection of being Black and trans. They run weekly support groups in London and Birmingham, and offer one-to-one support sessions. Contact them at support@blacktranshub.org or through their website.",
			Category:        "trans support",
			Organization:    "Black Trans Hub",
			Tags:            []string{"trans", "transgender", "peer support", "advocacy", "legal support"},
			Priority:        domain.PriorityHigh,
			Region:          "London, Birmingham",
			CulturalContext: "Specifically for Black trans experiences and challenges",
			Accessibility:   "Trans-friendly spaces, chosen name respected, various meeting formats",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-3",
			Question:        "housing support and discrimination",
			Answer:          "For housing support, there are several options depending on your situation. If you're facing discrimination, contact Shelter's discrimination helpline or the Equality and Human Rights Commission. For emergency housing, contact your local council's housing department - they have a duty to help if you're homeless or at risk. For longer-term support, organizations like Albert Kennedy Trust (AKT) specifically support LGBTQ+ young people with housing. For Black-specific housing advice, contact your local Black housing association or community center.",
			Category:        "housing",
			Organization:    "Various",
			Tags:            []string{"housing", "discrimination", "homelessness", "emergency accommodation", "rights"},
			Priority:        domain.PriorityHigh,
			Region:          "UK-wide",
			CulturalContext: "Understanding of racial discrimination in housing market",
			Accessibility:   "Multiple contact methods, interpreters available",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-4",
			Question:        "legal rights and discrimination",
			Answer:          "For legal support, especially around discrimination, there are several free and low-cost options. The Equality and Human Rights Commission provides free advice on discrimination issues. Liberty offers legal advice and representation for civil liberties issues. For employment discrimination, contact ACAS (free) or your trade union if you have one. For immigration issues affecting queer people, contact UKLGIG (UK Lesbian & Gay Immigration Group). Many local law centers also provide free legal advice - search for your local community legal clinic.",
			Category:        "legal",
			Organization:    "Various",
			Tags:            []string{"legal", "discrimination", "rights", "employment", "immigration"},
			Priority:        domain.PriorityHigh,
			Region:          "UK-wide",
			CulturalContext: "Understanding of racial and sexuality-based discrimination",
			Accessibility:   "Free phone advice, written information available",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-5",
			Question:        "community events and social groups",
			Answer:          "There are lots of community events happening regularly! BLKOUT runs monthly community gatherings focused on cooperative ownership and Black queer liberation. Black Thrive BQC hosts wellness workshops and social events. QueerCroydon organizes regular social meetups in South London. Black Trans Hub runs support groups and social events. Check their websites and social media for current events, or I can help you find events in your specific area. Many events are free or low-cost to ensure accessibility.",
			Category:        "events",
			Organization:    "Various",
			Tags:            []string{"events", "social", "community", "meetups", "workshops"},
			Priority:        domain.PriorityMedium,
			Region:          "London, Birmingham, Manchester, Croydon",
			CulturalContext: "Black queer specific events and safer spaces",
			Accessibility:   "Most events are wheelchair accessible, check individual events",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-6",
			Question:        "employment and workplace discrimination",
			Answer:          "For employment support, contact your local job center plus for basic support. For workplace discrimination, ACAS provides free advice and mediation services. Stonewall's workplace equality index can help you identify LGBTQ+ friendly employers. For race discrimination at work, contact the Equality and Human Rights Commission. If you're in a union, they can provide representation and advice. For career development specifically for Black professionals, organizations like the Black Professional Network offer mentoring and networking opportunities.",
			Category:        "employment",
			Organization:    "Various",
			Tags:            []string{"employment", "workplace", "discrimination", "careers", "rights"},
			Priority:        domain.PriorityMedium,
			Region:          "UK-wide",
			CulturalContext: "Understanding of both racial and sexuality-based workplace discrimination",
			Accessibility:   "Phone and online advice available",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-7",
			Question:        "youth support for Black queer young people",
			Answer:          "For young Black queer people, there are several specialized services. Albert Kennedy Trust (AKT) supports LGBTQ+ young people aged 16-25 with housing, mentoring, and advocacy. Black Pride Youth runs groups and events specifically for young Black LGBTQ+ people. Many local youth services also have specific LGBTQ+ support - check with your local council's youth services. School-based support is available through organizations like Stonewall's education program.",
			Category:        "youth",
			Organization:    "Various",
			Tags:            []string{"youth", "young people", "support", "education", "mentoring"},
			Priority:        domain.PriorityHigh,
			Region:          "UK-wide",
			CulturalContext: "Understanding of unique challenges facing young Black queer people",
			Accessibility:   "Age-appropriate services, multiple contact methods",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
		{
			ID:              "kb-8",
			Question:        "healthcare and GP services",
			Answer:          "Finding culturally competent healthcare can be challenging. For trans healthcare, contact your GP about referrals to Gender Identity Clinics, though waiting times are long. Private options include GenderCare and London Transgender Clinic. For general healthcare, you can ask to see a different GP if you don't feel comfortable with yours. Some areas have specific LGBTQ+ healthcare services - check with your local NHS trust. For mental health, many areas have specific services for LGBTQ+ people.",
			Category:        "healthcare",
			Organization:    "Various",
			Tags:            []string{"healthcare", "GP", "NHS", "trans healthcare", "medical"},
			Priority:        domain.PriorityHigh,
			Region:          "UK-wide",
			CulturalContext: "Understanding of barriers to healthcare for Black queer people",
			Accessibility:   "NHS services free at point of use, interpreters available",
			Active:          true,
			LastUpdated:     fixtureUpdatedAt,
		},
	}
}

// fixtureResourceItems returns the partner organization directory.
func fixtureResourceItems() []*domain.ResourceItem {
	return []*domain.ResourceItem{
		{
			ID:                 "res-1",
			Name:               "Black Thrive BQC Mental Health Services",
			Description:        "Culturally competent mental health support for Black queer individuals",
			Category:           "mental health",
			Organization:       "Black Thrive BQC",
			ContactEmail:       "info@blackthrivebqc.org",
			Website:            "https://blackthrivebqc.org",
			Cost:               domain.CostFree,
			TargetAudience:     []string{"Black queer individuals", "LGBTQ+ people", "mental health support seekers"},
			Accessibility:      []string{"Wheelchair accessible", "BSL interpreters available", "Multiple languages"},
			Region:             "London, Birmingham, Manchester",
			CulturalCompetency: []string{"Black community understanding", "LGBTQ+ affirmative", "Intersectional approach"},
			Specialties:        []string{"Individual therapy", "Group support", "Crisis intervention", "Community workshops"},
			ReferralProcess:    "Self-referral via website or phone",
			WaitingTime:        "2-4 weeks",
			Active:             true,
			LastUpdated:        fixtureUpdatedAt,
		},
		{
			ID:                 "res-2",
			Name:               "Black Trans Hub Support Services",
			Description:        "Comprehensive support for Black trans individuals including peer support and advocacy",
			Category:           "trans support",
			Organization:       "Black Trans Hub",
			ContactEmail:       "support@blacktranshub.org",
			Website:            "https://blacktranshub.org",
			Cost:               domain.CostFree,
			TargetAudience:     []string{"Black trans individuals", "Trans people", "Gender diverse people"},
			Accessibility:      []string{"Trans-friendly spaces", "Chosen names respected", "Various meeting formats"},
			Region:             "London, Birmingham",
			CulturalCompetency: []string{"Trans experience understanding", "Black community knowledge", "Intersectional support"},
			Specialties:        []string{"Peer support groups", "Advocacy", "Legal name change support", "Clothing exchange"},
			ReferralProcess:    "Self-referral via website, phone, or drop-in",
			WaitingTime:        "Immediate for crisis support, 1-2 weeks for regular support",
			Active:             true,
			LastUpdated:        fixtureUpdatedAt,
		},
		{
			ID:                 "res-3",
			Name:               "BLKOUT Community Organizing",
			Description:        "Community organizing focused on cooperative ownership and Black queer liberation",
			Category:           "community organizing",
			Organization:       "BLKOUT",
			ContactEmail:       "info@blkoutuk.org",
			Website:            "https://blkoutuk.org",
			Cost:               domain.CostFree,
			TargetAudience:     []string{"Black queer people", "Community organizers", "Cooperative ownership advocates"},
			Accessibility:      []string{"Wheelchair accessible venues", "Multiple meeting formats", "Childcare available"},
			Region:             "London, Birmingham, Manchester",
			CulturalCompetency: []string{"Black queer liberation focus", "Cooperative ownership principles", "Community organizing"},
			Specialties:        []string{"Community organizing", "Cooperative ownership", "Political education", "Mutual aid"},
			ReferralProcess:    "Open membership, attend events or contact directly",
			Active:             true,
			LastUpdated:        fixtureUpdatedAt,
		},
		{
			ID:                 "res-4",
			Name:               "QueerCroydon Community Groups",
			Description:        "Regional organizing and social groups for queer people in South London",
			Category:           "community groups",
			Organization:       "QueerCroydon",
			ContactEmail:       "info@queercroydon.org",
			Cost:               domain.CostFree,
			TargetAudience:     []string{"Queer people in South London", "Community members", "Social group seekers"},
			Accessibility:      []string{"Various venue accessibility", "Public transport accessible", "Low-cost/free events"},
			Region:             "Croydon, South London",
			CulturalCompetency: []string{"Queer-affirmative", "Community-focused", "Grassroots organizing"},
			Specialties:        []string{"Social events", "Community organizing", "Mutual aid", "Networking"},
			ReferralProcess:    "Open to all, check website for events",
			Active:             true,
			LastUpdated:        fixtureUpdatedAt,
		},
	}
}
