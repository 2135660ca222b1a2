package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #111111;
            color: #ffffff;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #1c1c1c;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #2c2c2c;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            color: #f59e0b;
            margin: 0;
        }
        h2 {
            color: #ffffff;
            font-size: 24px;
            margin: 0 0 16px;
        }
        p {
            color: #999999;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .highlight {
            color: #f59e0b;
            font-weight: 600;
        }
        .info-box {
            background: #262626;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #666666;
            font-size: 12px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo">
                <h1>OWM Studio</h1>
            </div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>&copy; 2026 OWM Studio. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`

// WelcomeTemplate - sent after registration
const WelcomeTemplate = `
<h2>Welcome!</h2>
<p>Hi <span class="highlight">{{.UserName}}</span>,</p>
<p>Your account is ready. Browse our video, audio and photo services and book your next session in a few clicks.</p>
<p>See you in the studio!</p>
`

// ContactNotificationTemplate - sent to the studio inbox on contact submission
const ContactNotificationTemplate = `
<h2>New contact form submission</h2>
<div class="info-box">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
</div>
<p>{{.Message}}</p>
`

// BookingConfirmedTemplate - sent to a customer after a booking is created
const BookingConfirmedTemplate = `
<h2>Booking confirmed</h2>
<p>Hi <span class="highlight">{{.UserName}}</span>,</p>
<p>Your booking for <strong>{{.ServiceName}}</strong> is confirmed.</p>
<div class="info-box">
    <p><strong>Date:</strong> {{.EventDate}}</p>
    <p><strong>Time:</strong> {{.EventTime}}</p>
</div>
<p>If your plans change, you can cancel the booking from your dashboard.</p>
`

// BookingCancelledTemplate - sent to a customer after a booking is cancelled
const BookingCancelledTemplate = `
<h2>Booking cancelled</h2>
<p>Hi <span class="highlight">{{.UserName}}</span>,</p>
<p>Your booking for <strong>{{.ServiceName}}</strong> on {{.EventDate}} has been cancelled.</p>
<p>We hope to see you again soon.</p>
`
