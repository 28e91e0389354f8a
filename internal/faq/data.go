package faq

// WelcomeProse opens every conversation and fronts the main menu.
const WelcomeProse = "Welcome to Code Ninjas! Are you interested in a Program or a Franchisee? Which role fits you the best?"

// BrowsingPrompt is returned for "something else / just browsing" queries.
const BrowsingPrompt = "Please tell us what you are looking for"

// WelcomeMenu is the main-menu payload returned on menu resets.
var WelcomeMenu = Payload{
	Prose: WelcomeProse,
	Menu: []string{
		"Parent/Guardian",
		"Existing Franchise Owner",
		"Franchise Staff",
		"Potential Franchisee Owner",
		"Something else/just browsing",
	},
}

// menuPhrases short-circuit straight back to the main menu.
var menuPhrases = []string{
	"go back to main menu",
	"back to main menu",
	"main menu",
	"go back",
	"start over",
}

// menuWords trigger the same reset for very short queries.
var menuWords = map[string]bool{"home": true, "menu": true, "back": true}

// browsingPhrases short-circuit to the clarifying prompt.
var browsingPhrases = []string{
	"something else/just browsing",
	"something else just browsing",
	"just browsing",
	"something else",
}

// generativeEscalations are curated questions whose canned answers are too
// thin; when the query exact-matches one of these, the pipeline skips the
// semantic and structured tiers and asks the generative tier instead.
var generativeEscalations = []string{
	"I have another concern",
	"Ask a general question about a program",
	"Ask a general question regarding Franchisee cost, ownership and returns",
	"I want to know about career opportunities",
	"I have a question regarding available programs and timings",
}

// MenuBank holds the navigation tree: each canonical selection yields the
// next sub-menu rather than prose.
var MenuBank = Bank{
	Name:                 "menu",
	ContainmentThreshold: 0.8,
	Entries: []Entry{
		{
			Question: WelcomeProse,
			Payload:  WelcomeMenu,
		},
		{
			Question: "Parent/Guardian",
			Payload: Payload{Menu: []string{
				"Enroll or learn about programs for my kids",
				"Know more about CAMPS",
				"Know more about Clubs",
				"Know more about Academies",
				"Know more about CREATE",
				"Know more about JR",
				"Know more about Parent Night Out",
				"Know more about Birthday Parties",
				"Know more about Home Schooling",
				"Know more about After School Programs",
				"Know more about PTO / PTA",
				"Know more about Upcoming Events / Programs",
				"Ask a general question about a program",
				"Go back to Main Menu",
			}},
		},
		{
			Question: "Existing Franchise Owner",
			Payload: Payload{Menu: []string{
				"I want to know more about Franchise Ownership",
				"I want to sell my Franchise",
				"I want to own a new Franchise",
				"I want to raise a support issue",
				"I have another concern",
				"Ask a general question regarding Franchisee cost, ownership and returns",
				"Go back to Main Menu",
			}},
		},
		{
			Question: "Franchise Staff",
			Payload: Payload{Menu: []string{
				"I want to raise a support issue",
				"I have another concern",
				"I want to know about Program timings",
				"Go back to Main Menu",
			}},
		},
		{
			Question: "Potential Franchisee Owner",
			Payload: Payload{Menu: []string{
				"I want to know more about Franchise Ownership",
				"I want to own a Franchise",
				"I want to raise a support issue",
				"I have another concern",
				"Go back to Main Menu",
			}},
		},
		{
			Question: "Something else/just browsing",
			Payload: Payload{Menu: []string{
				"I want to know about career opportunities",
				"I have a question regarding available programs and timings",
				"I want to know about my nearby Centers",
				"I want to know more about Franchise Ownership",
				"I want to own a Franchise",
				"I want to raise a support issue",
				"I have another concern",
				"Go back to Main Menu",
			}},
		},
		{
			Question: "I want to raise a support issue",
			Payload: Payload{Prose: "To raise a support issue, please contact your Franchise Business Partner (FBP) or reach out to the Code Ninjas support team. You can submit a support ticket through the franchise portal, email the support team directly, or call the support hotline. For urgent issues, please contact your FBP immediately. The support team will assist you with technical issues, operational questions, system access problems, and other concerns related to your franchise operations."},
		},
		{
			Question: "I have another concern",
			Payload:  Payload{Prose: "Please tell us what you are looking for or describe your concern, and we'll do our best to help you."},
		},
	},
}

// FranchiseBank is the hand-authored franchise FAQ corpus. It doubles as the
// source corpus for the semantic index.
var FranchiseBank = Bank{
	Name:                 "franchise",
	ContainmentThreshold: 0.7,
	Entries: []Entry{
		{
			Question: "What is Code Ninjas and how does the franchise model work?",
			Payload:  Payload{Prose: "Code Ninjas is a STEM learning center where kids learn coding, robotics, and game development through a structured, belt-based curriculum. Franchise owners operate a physical learning center supported by centralized curriculum, systems, and marketing assets."},
		},
		{
			Question: "What are the benefits of owning a Code Ninjas franchise?",
			Payload:  Payload{Prose: "Benefits include a proven curriculum, strong brand recognition, dedicated franchise support teams, comprehensive software systems, and a structured operational lifecycle (onboarding, support, expansion, transfer/closure)."},
		},
		{
			Question: "Do I need coding or teaching experience?",
			Payload:  Payload{Prose: "No. Code Ninjas provides curriculum, training, and operational guidance. Owners manage the business and hire instructors (Senseis)."},
		},
		{
			Question: "How much does it cost to open a Code Ninjas center?",
			Payload:  Payload{Prose: "Investment varies by market, build-out, and size. Exact cost ranges, royalties, and financial disclosures are outlined in the Franchise Disclosure Document (FDD)."},
		},
		{
			Question: "How long does it take to open a center?",
			Payload:  Payload{Prose: "Typically 3-9 months depending on site approval, build-out, hiring, permitting, and onboarding."},
		},
		{
			Question: "What kind of support does Code Ninjas provide?",
			Payload:  Payload{Prose: "Support includes: Training (owners + staff), Curriculum delivery, Marketing launch assistance, Technology setup (Dojo, M365, MyStudio, etc.), Ongoing operations coaching, Software, branding, and compliance management."},
		},
		{
			Question: "How do I raise a support issue?",
			Payload:  Payload{Prose: "To raise a support issue, please contact your Franchise Business Partner (FBP) or reach out to the Code Ninjas support team. You can submit a support ticket through the franchise portal, email the support team directly, or call the support hotline."},
		},
		{
			Question: "How can I find out which centers I can buy?",
			Payload:  Payload{Prose: "Once you complete the inquiry form, a Franchise Development Manager will guide you through available resale opportunities that fit your preferred geography, budget, and ownership goals."},
		},
		{
			Question: "Can I request information about a specific center that I know is for sale?",
			Payload:  Payload{Prose: "Yes. You may request details on a specific center, and the team can share general information; full financials and operational data require an NDA and FDD review."},
		},
		{
			Question: "What steps are involved in buying an existing center?",
			Payload:  Payload{Prose: "The process typically includes: Inquiry submission, FDD review and NDA signing, Review of financials and operations, Seller meetings and validation, Approval by Franchise Development, Transfer process, including systems handoff, legal documents, and onboarding."},
		},
		{
			Question: "What support do I get when taking over an existing center?",
			Payload:  Payload{Prose: "You receive: Transition support, System onboarding, Marketing guidance, Curriculum training, Tech and operational setup assistance."},
		},
		{
			Question: "How can I open a brand-new Code Ninjas center?",
			Payload:  Payload{Prose: "Submit a franchise inquiry, meet your Franchise Development Manager, review the FDD, secure a territory, sign the Franchise Agreement, then begin site selection and onboarding."},
		},
		{
			Question: "How do you determine if my territory is available?",
			Payload:  Payload{Prose: "Territories are mapped based on population, demand, and proximity to existing centers. Franchise Development will confirm whether your preferred geography is open, reserved, or at capacity."},
		},
		{
			Question: "Can I choose any location to open my center?",
			Payload:  Payload{Prose: "Location approval must meet Code Ninjas' criteria for: Demographics, Accessibility, Foot traffic, Safety, Market demand. Your team will guide you through site selection and lease review."},
		},
		{
			Question: "What tools and systems do new centers receive?",
			Payload:  Payload{Prose: "You receive access to: Dojo (curriculum + student progression), CRM and membership systems, Marketing templates, Operations manuals, Technology licensing and account provisioning."},
		},
		{
			Question: "How many employees do I need to operate?",
			Payload:  Payload{Prose: "Most centers require: 1 Center Director, A team of part-time Senseis, Optional administrative support (depending on volume)."},
		},
		{
			Question: "What are the main revenue streams for new centers?",
			Payload:  Payload{Prose: "New centers typically earn through: Monthly memberships, STEM camps, Workshops, Parents' Nights Out events, Special programs and partnerships."},
		},
		{
			Question: "Are multi-unit ownership opportunities available?",
			Payload:  Payload{Prose: "Yes. Strong candidates with business experience often qualify for owning 2-5 centers, depending on market capacity."},
		},
		{
			Question: "What qualifications do I need to be approved?",
			Payload:  Payload{Prose: "Typical requirements include: Financial capability to invest, Community-oriented mindset, Ability to lead staff, Willingness to follow franchise systems, Strong communication and customer experience focus."},
		},
		{
			Question: "What ongoing fees should I expect?",
			Payload:  Payload{Prose: "The FDD outlines all recurring fees, including: Royalties, Marketing fund contributions, Tech/platform fees."},
		},
		{
			Question: "Do you provide financing?",
			Payload:  Payload{Prose: "Many franchisees use SBA loans, third-party financing partners, or personal funding. Code Ninjas does not directly finance centers."},
		},
		{
			Question: "When do I receive the FDD?",
			Payload:  Payload{Prose: "You receive the Franchise Disclosure Document after your initial qualification call with Franchise Development."},
		},
		{
			Question: "Can I sell my Code Ninjas franchise in the future?",
			Payload:  Payload{Prose: "Yes. Subject to the Franchise Agreement and Code Ninjas approval, you may sell your center to a qualified buyer. Code Ninjas supports a structured transfer process designed to protect students, the brand, and both buyer and seller."},
		},
		{
			Question: "Can I transfer my franchise to a family member or business partner?",
			Payload:  Payload{Prose: "Yes, in many cases ownership can be transferred to a qualified family member or partner, subject to Code Ninjas' approval and the requirements in your Franchise Agreement."},
		},
		{
			Question: "What is the difference between a closure and a termination?",
			Payload:  Payload{Prose: "A closure is typically a business decision initiated by the owner (for example, at the end of the Franchise Agreement term or for strategic/financial reasons). A termination usually refers to ending the Franchise Agreement early because of a default or serious non-compliance."},
		},
		{
			Question: "Are there fees or obligations when I close?",
			Payload:  Payload{Prose: "Your FDD and Franchise Agreement will outline any fees or remaining obligations associated with non-renewal or early closure (e.g., outstanding amounts, lease responsibilities, equipment, and post-term covenants)."},
		},
		{
			Question: "What are my realistic exit options as a Code Ninjas franchise owner?",
			Payload:  Payload{Prose: "You generally have three paths: Sell/transfer your center to a qualified buyer, Non-renew or voluntarily close at the end of your term, or in rare cases face termination for serious non-compliance."},
		},
		{
			Question: "How is buying an existing center different from opening a new one?",
			Payload:  Payload{Prose: "Buying an existing center usually means: an established student base and revenue, existing staff and systems already in place, a defined operating history you can review. Opening a new center means more upfront build-out and ramp-up work, starting enrollment from zero, and more flexibility to shape local relationships from day one."},
		},
	},
}

// DefaultBanks is the ordered collection the matcher scans: navigation first,
// then the free-text FAQ corpus with its looser containment threshold.
func DefaultBanks() []Bank {
	return []Bank{MenuBank, FranchiseBank}
}
