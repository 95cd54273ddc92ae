package content

const homePageGROQ = `*[_type == "homePage"][0] {
  _id,
  headline,
  subheadline,
  ctaText,
  ctaLink,
  featuredWork[]->,
  seo
}`

const playbookGROQ = `*[_type == "playbook"][0] {
  _id,
  title,
  description,
  content,
  pdfFile {
    asset-> {
      _id,
      url,
      originalFilename,
      size
    }
  },
  seo
}`

const frameworkPageGROQ = `*[_type == "frameworkPage"][0] {
  _id,
  title,
  description,
  sections[] {
    _key,
    heading,
    content,
    order
  },
  seo
}`

const allCaseStudiesGROQ = `*[_type == "caseStudy"] | order(publishedAt desc) {
  _id,
  title,
  slug,
  excerpt,
  client,
  industry,
  publishedAt,
  featuredImage,
  tags
}`

const caseStudyBySlugGROQ = `*[_type == "caseStudy" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  excerpt,
  client,
  industry,
  publishedAt,
  featuredImage,
  tags,
  sections[] {
    _key,
    sectionType,
    heading,
    content,
    image,
    stats[] {
      label,
      value
    }
  },
  seo
}`

const allTalksGROQ = `*[_type == "talk"] | order(date desc) {
  _id,
  title,
  slug,
  description,
  date,
  type,
  status,
  venue,
  location,
  recordingUrl,
  slidesUrl
}`

const siteSettingsGROQ = `*[_type == "siteSettings"][0] {
  _id,
  title,
  description,
  logo,
  navigation[] {
    title,
    slug
  },
  footer
}`

var (
	HomePageQuery = Query{
		Name:         "homePage",
		GROQ:         homePageGROQ,
		DocumentType: "homePage",
		Require:      []string{"headline"},
	}
	PlaybookQuery = Query{
		Name:         "playbook",
		GROQ:         playbookGROQ,
		DocumentType: "playbook",
		Require:      []string{"title"},
	}
	FrameworkPageQuery = Query{
		Name:         "frameworkPage",
		GROQ:         frameworkPageGROQ,
		DocumentType: "frameworkPage",
		Require:      []string{"title"},
	}
	AllCaseStudiesQuery = Query{
		Name:         "allCaseStudies",
		GROQ:         allCaseStudiesGROQ,
		DocumentType: "caseStudy",
		List:         true,
		Require:      []string{"title"},
	}
	AllTalksQuery = Query{
		Name:         "allTalks",
		GROQ:         allTalksGROQ,
		DocumentType: "talk",
		List:         true,
		Require:      []string{"title"},
	}
	SiteSettingsQuery = Query{
		Name:         "siteSettings",
		GROQ:         siteSettingsGROQ,
		DocumentType: "siteSettings",
		Require:      []string{"title"},
	}
)

// CaseStudyBySlugQuery selects one case study; slug is bound verbatim.
func CaseStudyBySlugQuery(slug string) Query {
	return Query{
		Name:         "caseStudyBySlug",
		GROQ:         caseStudyBySlugGROQ,
		Params:       map[string]any{"slug": slug},
		DocumentType: "caseStudy",
		Require:      []string{"title"},
	}
}
