// internal/database/seeds/catalog.go
package seeds

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/javajoker/storefront-backend/internal/models"
	"github.com/javajoker/storefront-backend/internal/utils"
)

// CatalogVersion identifies the fixture set below in seed_runs. Bump it when
// the fixtures change in a way existing databases should pick up.
const CatalogVersion = "catalog-v1"

type CategoryFixture struct {
	Name         string           `validate:"required,max=100"`
	Slug         string           `validate:"required,slug"`
	Description  string           `validate:"required"`
	DisplayOrder int              `validate:"min=0"`
	Products     []ProductFixture `validate:"dive"`
}

type ProductFixture struct {
	Name             string `validate:"required,max=200"`
	Slug             string `validate:"required,slug"`
	ShortDescription string `validate:"required,max=300"`
	FullDescription  string `validate:"required"`
	Price            string `validate:"required,money"`
	Featured         bool
	DisplayOrder     int `validate:"min=0"`
}

// Catalog returns the reference categories with their products.
func Catalog() []CategoryFixture {
	return []CategoryFixture{
		{
			Name:         "AI Automation",
			Slug:         "ai-automation",
			Description:  "Cutting-edge AI-powered automation solutions to streamline your business operations",
			DisplayOrder: 1,
			Products: []ProductFixture{
				{
					Name:             "AI Email Assistant",
					Slug:             "ai-email-assistant",
					ShortDescription: "Automate email responses and inbox management with AI",
					FullDescription:  "Our AI Email Assistant uses advanced natural language processing to automatically categorize, prioritize, and respond to emails. Save hours every week while maintaining professional communication with your clients and partners.",
					Price:            "299.00",
					Featured:         true,
					DisplayOrder:     1,
				},
				{
					Name:             "Document Intelligence Suite",
					Slug:             "document-intelligence",
					ShortDescription: "Extract insights from documents automatically with AI",
					FullDescription:  "Transform your document processing with AI-powered extraction, classification, and analysis. Handle invoices, contracts, reports, and more with unprecedented speed and accuracy.",
					Price:            "499.00",
					Featured:         true,
					DisplayOrder:     2,
				},
				{
					Name:             "Customer Service Bot",
					Slug:             "customer-service-bot",
					ShortDescription: "24/7 AI-powered customer support automation",
					FullDescription:  "Provide instant, accurate responses to customer inquiries around the clock. Our AI customer service bot learns from your knowledge base and continuously improves its responses.",
					Price:            "399.00",
					DisplayOrder:     3,
				},
			},
		},
		{
			Name:         "Hosting Solutions",
			Slug:         "hosting",
			Description:  "Reliable, scalable hosting packages for your web applications",
			DisplayOrder: 2,
			Products: []ProductFixture{
				{
					Name:             "Professional Hosting",
					Slug:             "professional-hosting",
					ShortDescription: "High-performance hosting for business websites",
					FullDescription:  "Premium hosting with 99.9% uptime guarantee, SSL certificates, daily backups, and dedicated support. Perfect for business websites and applications that demand reliability.",
					Price:            "49.00",
					Featured:         true,
					DisplayOrder:     1,
				},
				{
					Name:             "Enterprise Cloud Hosting",
					Slug:             "enterprise-cloud-hosting",
					ShortDescription: "Scalable cloud infrastructure for growing businesses",
					FullDescription:  "Enterprise-grade cloud hosting with auto-scaling, load balancing, and advanced security features. Built for applications that need to handle variable traffic and scale on demand.",
					Price:            "199.00",
					DisplayOrder:     2,
				},
			},
		},
		{
			Name:         "Custom Automations",
			Slug:         "custom-automations",
			Description:  "Tailored automation solutions designed specifically for your business needs",
			DisplayOrder: 3,
			Products: []ProductFixture{
				{
					Name:             "Custom Workflow Automation",
					Slug:             "custom-workflow-automation",
					ShortDescription: "Bespoke automation solutions for your unique processes",
					FullDescription:  "We design and implement custom automation workflows tailored to your specific business processes. From data entry to complex multi-step operations, we'll automate it for you.",
					Price:            "1999.00",
					Featured:         true,
					DisplayOrder:     1,
				},
				{
					Name:             "API Integration Service",
					Slug:             "api-integration",
					ShortDescription: "Connect your tools and automate data flow",
					FullDescription:  "Seamlessly integrate your business tools and automate data synchronization. We handle complex API integrations so your systems work together effortlessly.",
					Price:            "999.00",
					DisplayOrder:     2,
				},
			},
		},
		{
			Name:         "Content Creation",
			Slug:         "content-creation",
			Description:  "AI-powered content generation and creative services",
			DisplayOrder: 4,
			Products: []ProductFixture{
				{
					Name:             "AI Content Generator",
					Slug:             "ai-content-generator",
					ShortDescription: "Create high-quality content at scale with AI",
					FullDescription:  "Generate blog posts, social media content, product descriptions, and more with our AI-powered content creation tool. Maintain your brand voice while producing content 10x faster.",
					Price:            "149.00",
					Featured:         true,
					DisplayOrder:     1,
				},
				{
					Name:             "Video Script Generator",
					Slug:             "video-script-generator",
					ShortDescription: "AI-powered video script writing for any platform",
					FullDescription:  "Create engaging video scripts for YouTube, TikTok, Instagram, and more. Our AI understands platform-specific best practices and generates scripts optimized for viewer engagement.",
					Price:            "199.00",
					DisplayOrder:     2,
				},
			},
		},
	}
}

// Build validates the fixtures and turns them into rows ready for insert.
// Category ids are assigned here so products can reference them.
func Build(fixtures []CategoryFixture) ([]models.Category, []models.Product, error) {
	categories := make([]models.Category, 0, len(fixtures))
	var products []models.Product
	seen := make(map[string]bool)

	for _, cf := range fixtures {
		if err := utils.ValidateStruct(cf); err != nil {
			return nil, nil, fmt.Errorf("invalid category fixture %q: %w", cf.Slug, err)
		}

		category := models.Category{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			Name:         cf.Name,
			Slug:         cf.Slug,
			Description:  cf.Description,
			DisplayOrder: cf.DisplayOrder,
		}
		categories = append(categories, category)

		for _, pf := range cf.Products {
			if seen[pf.Slug] {
				return nil, nil, fmt.Errorf("duplicate product slug %q", pf.Slug)
			}
			seen[pf.Slug] = true

			price, err := models.NewMoney(pf.Price)
			if err != nil {
				return nil, nil, err
			}
			products = append(products, models.Product{
				CategoryID:       category.ID,
				Name:             pf.Name,
				Slug:             pf.Slug,
				ShortDescription: pf.ShortDescription,
				FullDescription:  pf.FullDescription,
				Price:            price,
				Featured:         pf.Featured,
				Active:           true,
				DisplayOrder:     pf.DisplayOrder,
			})
		}
	}

	return categories, products, nil
}
