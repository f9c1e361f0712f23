package dto

type EditProfileRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
	Email              string `json:"email"`
	FullName           string `json:"full_name"`
	Birthday           string `json:"birthday"`
	HomeSuburb         string `json:"home_suburb"`
	Program            string `json:"program"`
	ProfileText        string `json:"profile_text"`
}

type AvatarResponse struct {
	ProfileImg string `json:"profile_img"`
}
