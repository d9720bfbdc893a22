package email

import "fmt"

// ResetPasswordHTML renders the password-reset mail body. The link embeds
// the signed reset token and points at the frontend reset page.
func ResetPasswordHTML(displayName, resetLink string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <h2 style="color: #FF6B35;">Reset Your Password - Foodify</h2>
            <p>Hello %s,</p>
            <p>You requested to reset your password. Click the button below to proceed:</p>
            <a href="%s" style="display: inline-block; padding: 12px 24px; background: #FF6B35; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0;">Reset Password</a>
            <p>Or copy this link: <br><code>%s</code></p>
            <p><strong>This link will expire in 1 hour.</strong></p>
            <p>If you didn't request this, please ignore this email.</p>
            <hr style="margin: 30px 0;">
            <p style="color: #666; font-size: 12px;">Foodify - Food Delivery System</p>
        </div>`, displayName, resetLink, resetLink)
}

// PaymentOTPHTML renders the payment-confirmation mail carrying the OTP.
// Amount is in the smallest currency unit.
func PaymentOTPHTML(code string, amountCents uint32, restaurantName string) string {
	amount := fmt.Sprintf("%d.%02d", amountCents/100, amountCents%100)
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 500px; margin: 0 auto;">
            <div style="background: #5C2D91; padding: 24px; border-radius: 12px 12px 0 0; text-align: center;">
                <h1 style="color: white; margin: 0; font-size: 28px;">Khalti</h1>
                <p style="color: #e0c9f5; margin: 4px 0 0 0; font-size: 14px;">Digital Wallet</p>
            </div>
            <div style="background: white; padding: 32px; border-radius: 0 0 12px 12px; border: 1px solid #eee;">
                <h2 style="color: #333; margin-top: 0;">Payment Verification</h2>
                <p style="color: #555;">You are making a payment of:</p>
                <div style="background: #f9f4ff; border: 1px solid #d4b8f0; border-radius: 8px; padding: 16px; margin: 16px 0; text-align: center;">
                    <p style="margin: 0; color: #5C2D91; font-size: 28px; font-weight: bold;">Rs. %s</p>
                    <p style="margin: 4px 0 0 0; color: #888; font-size: 14px;">To %s via Foodify</p>
                </div>
                <p style="color: #555;">Your OTP code is:</p>
                <div style="background: #5C2D91; border-radius: 8px; padding: 20px; text-align: center; margin: 16px 0;">
                    <h1 style="color: white; margin: 0; letter-spacing: 12px; font-size: 36px;">%s</h1>
                </div>
                <p style="color: #888; font-size: 13px;">This OTP expires in <strong>5 minutes</strong>.</p>
                <p style="color: #888; font-size: 13px;">Never share this OTP with anyone.</p>
                <hr style="border: none; border-top: 1px solid #eee; margin: 24px 0;">
                <p style="color: #bbb; font-size: 12px; text-align: center;">Foodify Payment System</p>
            </div>
        </div>`, amount, restaurantName, code)
}
