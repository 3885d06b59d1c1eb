package models

// DateLayout is the layout used for product and comment dates.
const DateLayout = "2006-01-02"

// Comment is a public remark attached to a product.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

// Product represents a digital good listed in the catalog.
// Prices are integer MGA subunits.
type Product struct {
	ID           string    `json:"id" validate:"omitempty,uuid"`
	Title        string    `json:"title" validate:"required,min=3,max=150"`
	Description  string    `json:"description" validate:"omitempty,max=2000"`
	Price        int64     `json:"price" validate:"gte=0"`
	OldPrice     int64     `json:"old_price,omitempty" validate:"omitempty,gt=0"`
	Category     string    `json:"category" validate:"required"`
	CategorySlug string    `json:"category_slug" validate:"required"`
	Image        string    `json:"image"`
	Images       []string  `json:"images"`
	Seller       string    `json:"seller"`
	SellerID     string    `json:"seller_id"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int       `json:"review_count" validate:"gte=0"`
	Tags         []string  `json:"tags"`
	IsDigital    bool      `json:"is_digital"`
	DownloadURL  string    `json:"download_url,omitempty"`
	PreviewURL   string    `json:"preview_url,omitempty"`
	IsTopSeller  bool      `json:"is_top_seller"`
	Discount     int       `json:"discount,omitempty"`
	CreatedAt    string    `json:"created_at"`
	Likes        int       `json:"likes"`
	Comments     []Comment `json:"comments"`
}

// ProductUpdate is a partial set of mutable product fields. Nil fields
// are left untouched by Apply. ID, SellerID and CreatedAt are not
// updatable.
type ProductUpdate struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Price        *int64     `json:"price,omitempty"`
	OldPrice     *int64     `json:"old_price,omitempty"`
	Category     *string    `json:"category,omitempty"`
	CategorySlug *string    `json:"category_slug,omitempty"`
	Image        *string    `json:"image,omitempty"`
	Images       *[]string  `json:"images,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	ReviewCount  *int       `json:"review_count,omitempty"`
	Tags         *[]string  `json:"tags,omitempty"`
	IsDigital    *bool      `json:"is_digital,omitempty"`
	DownloadURL  *string    `json:"download_url,omitempty"`
	PreviewURL   *string    `json:"preview_url,omitempty"`
	IsTopSeller  *bool      `json:"is_top_seller,omitempty"`
	Discount     *int       `json:"discount,omitempty"`
	Likes        *int       `json:"likes,omitempty"`
	Comments     *[]Comment `json:"comments,omitempty"`
}

// Apply merges the non-nil fields of the update into the product.
func (p *Product) Apply(u ProductUpdate) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OldPrice != nil {
		p.OldPrice = *u.OldPrice
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.CategorySlug != nil {
		p.CategorySlug = *u.CategorySlug
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Images != nil {
		p.Images = *u.Images
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.ReviewCount != nil {
		p.ReviewCount = *u.ReviewCount
	}
	if u.Tags != nil {
		p.Tags = *u.Tags
	}
	if u.IsDigital != nil {
		p.IsDigital = *u.IsDigital
	}
	if u.DownloadURL != nil {
		p.DownloadURL = *u.DownloadURL
	}
	if u.PreviewURL != nil {
		p.PreviewURL = *u.PreviewURL
	}
	if u.IsTopSeller != nil {
		p.IsTopSeller = *u.IsTopSeller
	}
	if u.Discount != nil {
		p.Discount = *u.Discount
	}
	if u.Likes != nil {
		p.Likes = *u.Likes
	}
	if u.Comments != nil {
		p.Comments = *u.Comments
	}
}
