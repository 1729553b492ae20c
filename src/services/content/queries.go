package content

const postSummaryFields = `
	slug
	title
	excerpt
	tags
	publishedAt
	coverImage { url alt width height }
`

const postsQuery = `query Posts($first: Int!, $skip: Int!) {
	posts(orderBy: publishedAt_DESC, first: $first, skip: $skip) {` + postSummaryFields + `}
}`

const postBySlugQuery = `query PostBySlug($slug: String!) {
	post(where: { slug: $slug }) {` + postSummaryFields + `
		body
	}
}`

const projectFields = `
	slug
	title
	summary
	techStack
	repoUrl
	liveUrl
	featured
	order
	images { url alt width height }
`

const projectsQuery = `query Projects($featured: Boolean) {
	projects(orderBy: order_ASC, where: { featured: $featured }) {` + projectFields + `}
}`

const allProjectsQuery = `query Projects {
	projects(orderBy: order_ASC) {` + projectFields + `}
}`

const projectBySlugQuery = `query ProjectBySlug($slug: String!) {
	project(where: { slug: $slug }) {` + projectFields + `
		description
	}
}`

const pageBySlugQuery = `query PageBySlug($slug: String!) {
	page(where: { slug: $slug }) {
		slug
		title
		body
	}
}`
